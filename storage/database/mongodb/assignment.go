package mongorepos

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/storage/database"
)

type assignmentRepository struct {
	col         *mongo.Collection
	submissions *mongo.Collection
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *mongo.Database) *assignmentRepository {
	return &assignmentRepository{
		col:         db.Collection(database.AssignmentsCollection),
		submissions: db.Collection(database.SubmissionsCollection),
	}
}

func (repo assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	res, err := repo.col.InsertOne(ctx, asg)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		asg.ID = oid
	}
	return asg, nil
}

func (repo assignmentRepository) AssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]assignment.Assignment, error) {
	cursor, err := repo.col.Find(ctx, bson.M{"dueDate": bson.M{"$gte": from, "$lte": to}})
	if err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	var asgs []assignment.Assignment
	if err = cursor.All(ctx, &asgs); err != nil {
		return nil, errors.Wrap(err, "decoding assignments")
	}
	return asgs, nil
}

func (repo assignmentRepository) CreateSubmission(ctx context.Context, sub assignment.Submission) (assignment.Submission, error) {
	res, err := repo.submissions.InsertOne(ctx, sub)
	if err != nil {
		return assignment.Submission{}, errors.Wrap(err, "creating submission")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		sub.ID = oid
	}
	return sub, nil
}

func (repo assignmentRepository) ListSubmissionsByStudent(ctx context.Context, studentID string) ([]assignment.Submission, error) {
	cursor, err := repo.submissions.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	var subs []assignment.Submission
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, errors.Wrap(err, "decoding submissions")
	}
	return subs, nil
}

func (repo assignmentRepository) GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error {
	fields := bson.M{"grade": grade}
	if feedback != nil {
		fields["feedback"] = *feedback
	}
	res, err := repo.submissions.UpdateOne(ctx, bson.M{"submissionId": submissionID}, bson.M{"$set": fields})
	if err != nil {
		return errors.Wrap(err, "grading submission")
	}
	if res.MatchedCount == 0 {
		return assignment.ErrSubmissionNotFound
	}
	return nil
}
