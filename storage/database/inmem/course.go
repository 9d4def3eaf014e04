package inmemdb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/trezcool/eduhub/core/course"
)

type courseRepository struct {
	db      *courseTable
	lessons *lessonTable
	users   *userTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.courses, lessons: db.lessons, users: db.users}
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		courses = append(courses, *c)
	}
	return courses
}

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if crs.ID.IsZero() {
		crs.ID = bson.NewObjectID()
	}
	repo.db.table[crs.CourseID] = &crs
	return crs, nil
}

func (repo *courseRepository) GetCourseByID(_ context.Context, courseID string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[courseID]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(_ context.Context, filter course.QueryFilter) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0)
	for _, crs := range repo.query() {
		if filter.Category != "" && crs.Category != filter.Category {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(crs.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(crs.Tags, filter.Tags) {
			continue
		}
		if filter.PriceMin != nil && crs.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && crs.Price > *filter.PriceMax {
			continue
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func hasAnyTag(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}

func (repo *courseRepository) QueryCourseDetails(_ context.Context) ([]course.Details, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	repo.users.RLock()
	defer repo.users.RUnlock()

	details := make([]course.Details, 0)
	for _, crs := range repo.query() {
		// courses without a matching instructor are dropped, like $unwind does
		instructor, ok := repo.users.table[crs.InstructorID]
		if !ok {
			continue
		}
		details = append(details, course.Details{Course: crs, Instructor: *instructor})
	}
	return details, nil
}

func (repo *courseRepository) PublishCourse(_ context.Context, courseID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	crs, ok := repo.db.table[courseID]
	if !ok {
		return course.ErrNotFound
	}
	crs.IsPublished = true
	return nil
}

func (repo *courseRepository) AddCourseTags(_ context.Context, courseID string, tags []string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	crs, ok := repo.db.table[courseID]
	if !ok {
		return course.ErrNotFound
	}
	for _, tag := range tags {
		if !hasAnyTag(crs.Tags, []string{tag}) {
			crs.Tags = append(crs.Tags, tag)
		}
	}
	return nil
}

func (repo *courseRepository) CreateLesson(_ context.Context, lsn course.Lesson) (course.Lesson, error) {
	repo.lessons.Lock()
	defer repo.lessons.Unlock()

	if lsn.ID.IsZero() {
		lsn.ID = bson.NewObjectID()
	}
	repo.lessons.table[lsn.LessonID] = &lsn
	return lsn, nil
}

func (repo *courseRepository) DetachLesson(_ context.Context, lessonID, courseID string) error {
	repo.lessons.Lock()
	defer repo.lessons.Unlock()

	lsn, ok := repo.lessons.table[lessonID]
	if !ok || lsn.CourseID != courseID {
		return course.ErrLessonNotFound
	}
	lsn.CourseID = ""
	return nil
}
