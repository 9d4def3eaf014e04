package course

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
)

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		GetCourseByID(ctx context.Context, courseID string) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		FilterCourses(ctx context.Context, filter QueryFilter) ([]Course, error)
		// QueryCourseDetails joins each course with its instructor document.
		QueryCourseDetails(ctx context.Context) ([]Details, error)
		PublishCourse(ctx context.Context, courseID string) error
		AddCourseTags(ctx context.Context, courseID string, tags []string) error
		CreateLesson(ctx context.Context, lsn Lesson) (Lesson, error)
		DetachLesson(ctx context.Context, lessonID, courseID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	courseID := nc.CourseID
	if courseID == "" {
		courseID = uuid.NewString()
	}
	now := time.Now().UTC()
	crs := Course{
		CourseID:     courseID,
		Title:        nc.Title,
		Description:  nc.Description,
		InstructorID: nc.InstructorID,
		Category:     nc.Category,
		Level:        nc.Level,
		Duration:     nc.Duration,
		Price:        nc.Price,
		Tags:         nc.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) GetByID(ctx context.Context, courseID string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, core.CleanString(courseID))
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, filter)
}

// ByCategory gets all courses in a specific category.
func (svc *Service) ByCategory(ctx context.Context, category string) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, QueryFilter{Category: core.CleanString(category)})
}

// SearchByTitle searches courses by title, case-insensitive partial match.
func (svc *Service) SearchByTitle(ctx context.Context, title string) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, QueryFilter{Title: core.CleanString(title)})
}

// ByPriceRange finds courses priced within [min, max] inclusive.
func (svc *Service) ByPriceRange(ctx context.Context, min, max int) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, QueryFilter{PriceMin: &min, PriceMax: &max})
}

// WithTags finds courses carrying any of the given tags.
func (svc *Service) WithTags(ctx context.Context, tags []string) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, QueryFilter{Tags: tags})
}

// QueryDetails retrieves all courses joined with their instructor information.
func (svc *Service) QueryDetails(ctx context.Context) ([]Details, error) {
	return svc.repo.QueryCourseDetails(ctx)
}

// Publish marks a course as published.
func (svc *Service) Publish(ctx context.Context, courseID string) error {
	return svc.repo.PublishCourse(ctx, courseID)
}

// AddTags adds tags to an existing course, skipping duplicates.
func (svc *Service) AddTags(ctx context.Context, courseID string, tags []string) error {
	return svc.repo.AddCourseTags(ctx, courseID, tags)
}

// AddLesson adds a lesson to a course.
func (svc *Service) AddLesson(ctx context.Context, nl NewLesson) (Lesson, error) {
	if _, err := svc.repo.GetCourseByID(ctx, nl.CourseID); err != nil {
		return Lesson{}, err
	}
	lessonID := nl.LessonID
	if lessonID == "" {
		lessonID = uuid.NewString()
	}
	now := time.Now().UTC()
	lsn := Lesson{
		LessonID:  lessonID,
		CourseID:  nl.CourseID,
		Title:     nl.Title,
		Content:   nl.Content,
		Order:     nl.Order,
		Resources: nl.Resources,
		Duration:  nl.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateLesson(ctx, lsn)
}

// RemoveLesson detaches a lesson from a course by clearing its courseId.
func (svc *Service) RemoveLesson(ctx context.Context, lessonID, courseID string) error {
	return svc.repo.DetachLesson(ctx, lessonID, courseID)
}
