package course

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/user"
)

// Levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var AllLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

type Course struct {
	ID           bson.ObjectID `json:"-" bson:"_id,omitempty"`
	CourseID     string        `json:"course_id" bson:"courseId"`
	Title        string        `json:"title" bson:"title"`
	Description  string        `json:"description" bson:"description"`
	InstructorID string        `json:"instructor_id" bson:"instructorId"`
	Category     string        `json:"category" bson:"category"`
	Level        string        `json:"level" bson:"level"`
	Duration     int           `json:"duration" bson:"duration"` // hours
	Price        int           `json:"price" bson:"price"`       // cents
	Tags         []string      `json:"tags" bson:"tags"`
	Rating       *float64      `json:"rating" bson:"rating,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"createdAt"` // UTC
	UpdatedAt    time.Time     `json:"updated_at" bson:"updatedAt"` // UTC
	IsPublished  bool          `json:"is_published" bson:"isPublished"`
}

// Details is a course joined with its instructor document.
type Details struct {
	Course     `bson:",inline"`
	Instructor user.User `json:"instructor" bson:"instructor"`
}

type Lesson struct {
	ID        bson.ObjectID `json:"-" bson:"_id,omitempty"`
	LessonID  string        `json:"lesson_id" bson:"lessonId"`
	CourseID  string        `json:"course_id" bson:"courseId"`
	Title     string        `json:"title" bson:"title"`
	Content   string        `json:"content" bson:"content"`
	Order     int           `json:"order" bson:"order"`
	Resources []string      `json:"resources" bson:"resources"`
	Duration  int           `json:"duration" bson:"duration"` // minutes
	CreatedAt time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updatedAt"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	CourseID     string   `json:"course_id" validate:"omitempty,alphanum"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	InstructorID string   `json:"instructor_id" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Level        string   `json:"level" validate:"required,courselevel"`
	Duration     int      `json:"duration" validate:"gte=0"`
	Price        int      `json:"price" validate:"gte=0"`
	Tags         []string `json:"tags"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Category = core.CleanString(nc.Category)
	nc.Level = core.CleanString(nc.Level, true /* lower */)
	return core.Validate.Struct(nc)
}

// NewLesson contains information needed to add a Lesson to a course.
type NewLesson struct {
	LessonID  string   `json:"lesson_id" validate:"omitempty,alphanum"`
	CourseID  string   `json:"course_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content"`
	Order     int      `json:"order" validate:"gte=0"`
	Resources []string `json:"resources"`
	Duration  int      `json:"duration" validate:"gte=0"`
}

func (nl *NewLesson) Validate() error {
	nl.Title = core.CleanString(nl.Title)
	return core.Validate.Struct(nl)
}

// QueryFilter applies AND over its set fields; Title does a case-insensitive
// partial match, Tags matches any of the given tags.
type QueryFilter struct {
	Category string   `query:"category"`
	Title    string   `query:"title"`
	Tags     []string `query:"tag"`
	PriceMin *int     `query:"price_min"`
	PriceMax *int     `query:"price_max"`
}

func (f QueryFilter) IsEmpty() bool {
	return f.Category == "" && f.Title == "" && len(f.Tags) == 0 && f.PriceMin == nil && f.PriceMax == nil
}
