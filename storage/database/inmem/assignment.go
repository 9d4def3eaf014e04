package inmemdb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core/assignment"
)

type assignmentRepository struct {
	db          *assignmentTable
	submissions *submissionTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignments, submissions: db.submissions}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if asg.ID.IsZero() {
		asg.ID = bson.NewObjectID()
	}
	repo.db.table[asg.AssignmentID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) AssignmentsDueBetween(_ context.Context, from, to time.Time) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	asgs := make([]assignment.Assignment, 0)
	for _, asg := range repo.db.table {
		if asg.DueDate.Before(from) || asg.DueDate.After(to) {
			continue
		}
		asgs = append(asgs, *asg)
	}
	return asgs, nil
}

func (repo *assignmentRepository) CreateSubmission(_ context.Context, sub assignment.Submission) (assignment.Submission, error) {
	repo.submissions.Lock()
	defer repo.submissions.Unlock()

	if sub.ID.IsZero() {
		sub.ID = bson.NewObjectID()
	}
	repo.submissions.table[sub.SubmissionID] = &sub
	return sub, nil
}

func (repo *assignmentRepository) ListSubmissionsByStudent(_ context.Context, studentID string) ([]assignment.Submission, error) {
	repo.submissions.RLock()
	defer repo.submissions.RUnlock()

	subs := make([]assignment.Submission, 0)
	for _, sub := range repo.submissions.table {
		if sub.StudentID == studentID {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

func (repo *assignmentRepository) GradeSubmission(_ context.Context, submissionID string, grade float64, feedback *string) error {
	repo.submissions.Lock()
	defer repo.submissions.Unlock()

	sub, ok := repo.submissions.table[submissionID]
	if !ok {
		return assignment.ErrSubmissionNotFound
	}
	sub.Grade = &grade
	if feedback != nil {
		sub.Feedback = *feedback
	}
	return nil
}
