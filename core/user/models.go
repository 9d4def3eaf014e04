package user

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core"
)

// Roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

var AllRoles = []string{RoleStudent, RoleInstructor}

type Profile struct {
	Bio    string   `json:"bio" bson:"bio"`
	Avatar string   `json:"avatar" bson:"avatar"`
	Skills []string `json:"skills" bson:"skills"`
}

type User struct {
	ID         bson.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID     string        `json:"user_id" bson:"userId"`
	Email      string        `json:"email" bson:"email"`
	FirstName  string        `json:"first_name" bson:"firstName"`
	LastName   string        `json:"last_name" bson:"lastName"`
	Role       string        `json:"role" bson:"role"`
	DateJoined time.Time     `json:"date_joined" bson:"dateJoined"` // UTC
	Profile    Profile       `json:"profile" bson:"profile"`
	IsActive   bool          `json:"is_active" bson:"isActive"`
}

func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

// NewStudent contains information needed to register a new student.
// The role is always forced to "student" on creation.
type NewStudent struct {
	UserID    string  `json:"user_id" validate:"omitempty,alphanum"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Profile   Profile `json:"profile"`
}

func (ns *NewStudent) Validate(svc *Service) error {
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	return svc.checkUniqueness(ns.Email)
}

// UpdateProfile defines what information may be provided to modify a user's profile.
type UpdateProfile struct {
	Bio    string   `json:"bio"`
	Avatar string   `json:"avatar" validate:"omitempty,url"`
	Skills []string `json:"skills"`
}

func (up *UpdateProfile) Validate() error {
	up.Bio = core.CleanString(up.Bio)
	up.Avatar = core.CleanString(up.Avatar)
	return core.Validate.Struct(up)
}

type QueryFilter struct {
	Role        string    `query:"role"`
	IsActive    *bool     `query:"is_active"`
	JoinedSince time.Time `query:"joined_since"`
}
