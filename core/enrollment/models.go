package enrollment

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core"
)

type Enrollment struct {
	ID                bson.ObjectID `json:"-" bson:"_id,omitempty"`
	EnrollmentID      string        `json:"enrollment_id" bson:"enrollmentId"`
	StudentID         string        `json:"student_id" bson:"studentId"`
	CourseID          string        `json:"course_id" bson:"courseId"`
	EnrollmentDate    time.Time     `json:"enrollment_date" bson:"enrollmentDate"` // UTC
	Progress          float64       `json:"progress" bson:"progress"`              // 0 - 100
	Completed         bool          `json:"completed" bson:"completed"`
	CertificateIssued bool          `json:"certificate_issued" bson:"certificateIssued"`
}

// NewEnrollment contains information needed to register a student to a course.
type NewEnrollment struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
}

func (ne *NewEnrollment) Validate() error {
	ne.StudentID = core.CleanString(ne.StudentID)
	ne.CourseID = core.CleanString(ne.CourseID)
	return core.Validate.Struct(ne)
}
