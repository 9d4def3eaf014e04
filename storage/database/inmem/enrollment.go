package inmemdb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core/enrollment"
)

type enrollmentRepository struct {
	db *enrollmentTable
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) enrollment.Repository {
	return &enrollmentRepository{db: db.enrollments}
}

func (repo *enrollmentRepository) CountEnrollments(_ context.Context) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return int64(len(repo.db.table)), nil
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, enr enrollment.Enrollment) (enrollment.Enrollment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if enr.ID.IsZero() {
		enr.ID = bson.NewObjectID()
	}
	repo.db.table[enr.EnrollmentID] = &enr
	return enr, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(_ context.Context, enrollmentID string) (enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if enr, ok := repo.db.table[enrollmentID]; ok {
		return *enr, nil
	}
	return enrollment.Enrollment{}, enrollment.ErrNotFound
}

func (repo *enrollmentRepository) ListEnrollmentsByCourse(_ context.Context, courseID string) ([]enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	enrs := make([]enrollment.Enrollment, 0)
	for _, enr := range repo.db.table {
		if enr.CourseID == courseID {
			enrs = append(enrs, *enr)
		}
	}
	return enrs, nil
}

func (repo *enrollmentRepository) SetCertificateIssued(_ context.Context, enrollmentID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	enr, ok := repo.db.table[enrollmentID]
	if !ok {
		return enrollment.ErrNotFound
	}
	enr.CertificateIssued = true
	return nil
}

func (repo *enrollmentRepository) DeleteEnrollment(_ context.Context, enrollmentID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[enrollmentID]; !ok {
		return enrollment.ErrNotFound
	}
	delete(repo.db.table, enrollmentID)
	return nil
}
