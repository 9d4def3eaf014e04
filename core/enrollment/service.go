package enrollment

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/user"
)

var (
	// errors
	ErrNotFound          = errors.New("enrollment not found")
	ErrCertificatePending = errors.New("course not completed; certificate cannot be issued")
)

type (
	Repository interface {
		CountEnrollments(ctx context.Context) (int64, error)
		CreateEnrollment(ctx context.Context, enr Enrollment) (Enrollment, error)
		GetEnrollmentByID(ctx context.Context, enrollmentID string) (Enrollment, error)
		ListEnrollmentsByCourse(ctx context.Context, courseID string) ([]Enrollment, error)
		SetCertificateIssued(ctx context.Context, enrollmentID string) error
		DeleteEnrollment(ctx context.Context, enrollmentID string) error
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, usrRepo user.Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, usrRepo: usrRepo, mailSvc: mailSvc}
}

// Register creates an enrollment for a student in a course, with zero
// progress. Enrollment ids follow the seed data's "e<N>" sequence.
func (svc *Service) Register(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	count, err := svc.repo.CountEnrollments(ctx)
	if err != nil {
		return Enrollment{}, err
	}
	enr := Enrollment{
		EnrollmentID:   fmt.Sprintf("e%d", count+1),
		StudentID:      ne.StudentID,
		CourseID:       ne.CourseID,
		EnrollmentDate: time.Now().UTC(),
		Progress:       0.0,
	}
	return svc.repo.CreateEnrollment(ctx, enr)
}

func (svc *Service) GetByID(ctx context.Context, enrollmentID string) (Enrollment, error) {
	return svc.repo.GetEnrollmentByID(ctx, core.CleanString(enrollmentID))
}

// EnrolledStudents finds the student users enrolled in a particular course.
func (svc *Service) EnrolledStudents(ctx context.Context, courseID string) ([]user.User, error) {
	enrs, err := svc.repo.ListEnrollmentsByCourse(ctx, core.CleanString(courseID))
	if err != nil {
		return nil, err
	}
	studentIDs := make([]string, 0, len(enrs))
	for _, enr := range enrs {
		studentIDs = append(studentIDs, enr.StudentID)
	}
	return svc.usrRepo.GetUsersByIDs(ctx, studentIDs)
}

// IssueCertificate marks a completed enrollment's certificate as issued and
// notifies the student by email.
func (svc *Service) IssueCertificate(ctx context.Context, enrollmentID string) error {
	enr, err := svc.repo.GetEnrollmentByID(ctx, core.CleanString(enrollmentID))
	if err != nil {
		return err
	}
	if !enr.Completed {
		return ErrCertificatePending
	}
	if enr.CertificateIssued {
		return nil // already issued
	}
	if err = svc.repo.SetCertificateIssued(ctx, enr.EnrollmentID); err != nil {
		return err
	}

	if usr, err := svc.usrRepo.GetUserByID(ctx, enr.StudentID); err == nil {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: usr.Name(), Address: usr.Email}},
			Subject: "Your certificate is ready",
			Body: fmt.Sprintf(
				"Hi %s,\n\nCongratulations on completing course %s! Your certificate has been issued.\n",
				usr.FirstName, enr.CourseID,
			),
		})
	}
	return nil
}

func (svc *Service) Delete(ctx context.Context, enrollmentID string) error {
	return svc.repo.DeleteEnrollment(ctx, core.CleanString(enrollmentID))
}
