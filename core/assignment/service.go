package assignment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound           = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// AssignmentsDueBetween finds assignments whose due date falls in [from, to].
		AssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]Assignment, error)
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		ListSubmissionsByStudent(ctx context.Context, studentID string) ([]Submission, error)
		GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	assignmentID := na.AssignmentID
	if assignmentID == "" {
		assignmentID = uuid.NewString()
	}
	asg := Assignment{
		AssignmentID: assignmentID,
		CourseID:     na.CourseID,
		Title:        na.Title,
		Description:  na.Description,
		DueDate:      na.DueDate.UTC(),
		MaxScore:     na.MaxScore,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

// UpcomingDue retrieves assignments with due dates in the next number of weeks.
func (svc *Service) UpcomingDue(ctx context.Context, weeks int) ([]Assignment, error) {
	if weeks <= 0 {
		weeks = 1
	}
	now := time.Now().UTC()
	return svc.repo.AssignmentsDueBetween(ctx, now, now.Add(time.Duration(weeks)*7*24*time.Hour))
}

// Submit records a student's submission for an assignment.
func (svc *Service) Submit(ctx context.Context, assignmentID, studentID, content string) (Submission, error) {
	sub := Submission{
		SubmissionID: uuid.NewString(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		SubmittedAt:  time.Now().UTC(),
		Content:      content,
	}
	return svc.repo.CreateSubmission(ctx, sub)
}

// Grade updates a submission's grade, and its feedback when provided.
func (svc *Service) Grade(ctx context.Context, submissionID string, gu GradeUpdate) error {
	return svc.repo.GradeSubmission(ctx, submissionID, gu.Grade, gu.Feedback)
}

// StudentSubmissions lists all of a student's submissions.
func (svc *Service) StudentSubmissions(ctx context.Context, studentID string) ([]Submission, error) {
	return svc.repo.ListSubmissionsByStudent(ctx, studentID)
}
