package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core"
)

type Assignment struct {
	ID           bson.ObjectID `json:"-" bson:"_id,omitempty"`
	AssignmentID string        `json:"assignment_id" bson:"assignmentId"`
	CourseID     string        `json:"course_id" bson:"courseId"`
	Title        string        `json:"title" bson:"title"`
	Description  string        `json:"description" bson:"description"`
	DueDate      time.Time     `json:"due_date" bson:"dueDate"` // UTC
	MaxScore     float64       `json:"max_score" bson:"maxScore"`
	CreatedAt    time.Time     `json:"created_at" bson:"createdAt"`
}

type Submission struct {
	ID           bson.ObjectID `json:"-" bson:"_id,omitempty"`
	SubmissionID string        `json:"submission_id" bson:"submissionId"`
	AssignmentID string        `json:"assignment_id" bson:"assignmentId"`
	StudentID    string        `json:"student_id" bson:"studentId"`
	SubmittedAt  time.Time     `json:"submitted_at" bson:"submittedAt"`
	Content      string        `json:"content" bson:"content"`
	Grade        *float64      `json:"grade" bson:"grade,omitempty"`
	Feedback     string        `json:"feedback" bson:"feedback,omitempty"`
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	AssignmentID string    `json:"assignment_id" validate:"omitempty,alphanum"`
	CourseID     string    `json:"course_id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date" validate:"required"`
	MaxScore     float64   `json:"max_score" validate:"gt=0"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	return core.Validate.Struct(na)
}

// GradeUpdate carries a grade, and optional feedback, for a submission.
type GradeUpdate struct {
	Grade    float64 `json:"grade" validate:"gte=0"`
	Feedback *string `json:"feedback"`
}

func (gu *GradeUpdate) Validate() error {
	if gu.Feedback != nil {
		fb := core.CleanString(*gu.Feedback)
		gu.Feedback = &fb
	}
	return core.Validate.Struct(gu)
}
