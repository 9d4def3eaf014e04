package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, userID string) (User, error)
		GetUsersByIDs(ctx context.Context, userIDs []string) ([]User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		FilterUsers(ctx context.Context, filter QueryFilter) ([]User, error)
		UpdateProfile(ctx context.Context, userID string, profile Profile) error
		SetUserActive(ctx context.Context, userID string, active bool) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(context.Background(), email); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// CreateStudent registers a new student account. The role is forced to
// "student" regardless of input.
func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (User, error) {
	userID := ns.UserID
	if userID == "" {
		userID = uuid.NewString()
	}
	usr := User{
		UserID:     userID,
		Email:      ns.Email,
		FirstName:  ns.FirstName,
		LastName:   ns.LastName,
		Role:       RoleStudent,
		DateJoined: time.Now().UTC(),
		Profile:    ns.Profile,
		IsActive:   true,
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, userID string) (User, error) {
	return svc.repo.GetUserByID(ctx, core.CleanString(userID))
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]User, error) {
	return svc.repo.FilterUsers(ctx, filter)
}

// ActiveStudents finds all active users with the student role.
func (svc *Service) ActiveStudents(ctx context.Context) ([]User, error) {
	active := true
	return svc.repo.FilterUsers(ctx, QueryFilter{Role: RoleStudent, IsActive: &active})
}

// RecentSignups finds users who joined within the past number of months.
func (svc *Service) RecentSignups(ctx context.Context, months int) ([]User, error) {
	if months <= 0 {
		months = 6
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -30*months)
	return svc.repo.FilterUsers(ctx, QueryFilter{JoinedSince: cutoff})
}

// ModifyProfile replaces a user's profile information.
func (svc *Service) ModifyProfile(ctx context.Context, userID string, up UpdateProfile) error {
	profile := Profile{
		Bio:    up.Bio,
		Avatar: up.Avatar,
		Skills: up.Skills,
	}
	return svc.repo.UpdateProfile(ctx, userID, profile)
}

// Deactivate soft-deletes a user by clearing the isActive flag.
func (svc *Service) Deactivate(ctx context.Context, userID string) error {
	return svc.repo.SetUserActive(ctx, userID, false)
}
