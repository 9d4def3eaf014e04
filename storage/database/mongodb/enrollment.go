package mongorepos

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/storage/database"
)

type enrollmentRepository struct {
	col *mongo.Collection
}

var _ enrollment.Repository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *mongo.Database) *enrollmentRepository {
	return &enrollmentRepository{col: db.Collection(database.EnrollmentsCollection)}
}

func (repo enrollmentRepository) CountEnrollments(ctx context.Context) (int64, error) {
	count, err := repo.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "counting enrollments")
	}
	return count, nil
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, enr enrollment.Enrollment) (enrollment.Enrollment, error) {
	res, err := repo.col.InsertOne(ctx, enr)
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "creating enrollment")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		enr.ID = oid
	}
	return enr, nil
}

func (repo enrollmentRepository) GetEnrollmentByID(ctx context.Context, enrollmentID string) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.col.FindOne(ctx, bson.M{"enrollmentId": enrollmentID}).Decode(&enr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return enrollment.Enrollment{}, enrollment.ErrNotFound
	}
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "getting enrollment")
	}
	return enr, nil
}

func (repo enrollmentRepository) ListEnrollmentsByCourse(ctx context.Context, courseID string) ([]enrollment.Enrollment, error) {
	cursor, err := repo.col.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}
	var enrs []enrollment.Enrollment
	if err = cursor.All(ctx, &enrs); err != nil {
		return nil, errors.Wrap(err, "decoding enrollments")
	}
	return enrs, nil
}

func (repo enrollmentRepository) SetCertificateIssued(ctx context.Context, enrollmentID string) error {
	update := bson.M{"$set": bson.M{"certificateIssued": true}}
	res, err := repo.col.UpdateOne(ctx, bson.M{"enrollmentId": enrollmentID}, update)
	if err != nil {
		return errors.Wrap(err, "setting certificate flag")
	}
	if res.MatchedCount == 0 {
		return enrollment.ErrNotFound
	}
	return nil
}

func (repo enrollmentRepository) DeleteEnrollment(ctx context.Context, enrollmentID string) error {
	res, err := repo.col.DeleteOne(ctx, bson.M{"enrollmentId": enrollmentID})
	if err != nil {
		return errors.Wrap(err, "deleting enrollment")
	}
	if res.DeletedCount == 0 {
		return enrollment.ErrNotFound
	}
	return nil
}
