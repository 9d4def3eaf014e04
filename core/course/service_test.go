package course_test

import (
	"context"
	"errors"
	"testing"

	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/user"
	inmemdb "github.com/trezcool/eduhub/storage/database/inmem"
	"github.com/trezcool/eduhub/testutil"
)

func setup(t *testing.T) (*course.Service, *inmemdb.DB) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return course.NewService(inmemdb.NewCourseRepository(db)), db
}

func TestServiceCreate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	crs, err := svc.Create(ctx, course.NewCourse{
		Title:        "MongoDB Fundamentals",
		InstructorID: "u1",
		Category:     "MongoDB",
		Level:        course.LevelBeginner,
		Duration:     24,
		Price:        4900,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if crs.CourseID == "" {
		t.Error("CourseID is empty; want a generated id")
	}
	if crs.IsPublished {
		t.Error("IsPublished = true; want false on creation")
	}
	if crs.CreatedAt.IsZero() || !crs.CreatedAt.Equal(crs.UpdatedAt) {
		t.Error("want CreatedAt == UpdatedAt set on creation")
	}
}

func TestServiceFilters(t *testing.T) {
	svc, db := setup(t)
	repo := inmemdb.NewCourseRepository(db)
	ctx := context.Background()

	testutil.CreateCourse(t, repo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, nil)
	testutil.CreateCourse(t, repo, "c2", "Data Pipelines with Python", "u1", "Data Engineering", 7900, nil)
	testutil.CreateCourse(t, repo, "c3", "Advanced MongoDB Patterns", "u2", "MongoDB", 9900, nil)

	tests := []struct {
		name    string
		query   func() ([]course.Course, error)
		wantIDs map[string]bool
	}{
		{
			name:    "by category",
			query:   func() ([]course.Course, error) { return svc.ByCategory(ctx, "MongoDB") },
			wantIDs: map[string]bool{"c1": true, "c3": true},
		},
		{
			name:    "title search is case-insensitive and partial",
			query:   func() ([]course.Course, error) { return svc.SearchByTitle(ctx, "mongodb") },
			wantIDs: map[string]bool{"c1": true, "c3": true},
		},
		{
			name:    "by price range",
			query:   func() ([]course.Course, error) { return svc.ByPriceRange(ctx, 5000, 10000) },
			wantIDs: map[string]bool{"c2": true, "c3": true},
		},
		{
			name:    "no match",
			query:   func() ([]course.Course, error) { return svc.ByCategory(ctx, "Baking") },
			wantIDs: map[string]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses, err := tt.query()
			if err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if len(courses) != len(tt.wantIDs) {
				t.Fatalf("len(courses) = %d; want %d", len(courses), len(tt.wantIDs))
			}
			for _, crs := range courses {
				if !tt.wantIDs[crs.CourseID] {
					t.Errorf("unexpected course %q in results", crs.CourseID)
				}
			}
		})
	}
}

func TestServiceWithTags(t *testing.T) {
	svc, db := setup(t)
	repo := inmemdb.NewCourseRepository(db)
	ctx := context.Background()

	testutil.CreateCourse(t, repo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, nil)
	if err := svc.AddTags(ctx, "c1", []string{"MongoDB", "SQL"}); err != nil {
		t.Fatalf("AddTags() failed: %v", err)
	}
	// duplicates must be skipped
	if err := svc.AddTags(ctx, "c1", []string{"SQL", "ETL"}); err != nil {
		t.Fatalf("AddTags() failed: %v", err)
	}

	crs, err := svc.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if len(crs.Tags) != 3 {
		t.Errorf("len(Tags) = %d (%v); want 3", len(crs.Tags), crs.Tags)
	}

	courses, err := svc.WithTags(ctx, []string{"ETL"})
	if err != nil {
		t.Fatalf("WithTags() failed: %v", err)
	}
	if len(courses) != 1 || courses[0].CourseID != "c1" {
		t.Errorf("WithTags() = %v; want [c1]", courses)
	}
}

func TestServicePublish(t *testing.T) {
	svc, db := setup(t)
	repo := inmemdb.NewCourseRepository(db)
	ctx := context.Background()

	testutil.CreateCourse(t, repo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, nil)
	if err := svc.Publish(ctx, "c1"); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	crs, err := svc.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !crs.IsPublished {
		t.Error("IsPublished = false; want true after Publish")
	}

	if err = svc.Publish(ctx, "nope"); !errors.Is(err, course.ErrNotFound) {
		t.Errorf("Publish() error = %v; want %v", err, course.ErrNotFound)
	}
}

func TestServiceQueryDetails(t *testing.T) {
	svc, db := setup(t)
	crsRepo := inmemdb.NewCourseRepository(db)
	usrRepo := inmemdb.NewUserRepository(db)
	ctx := context.Background()

	inst := testutil.CreateUser(t, usrRepo, "u1", "inst@test.test", "Nadia", "Kone", user.RoleInstructor, true)
	testutil.CreateCourse(t, crsRepo, "c1", "MongoDB Fundamentals", inst.UserID, "MongoDB", 4900, nil)
	// no matching instructor; must be dropped from the join
	testutil.CreateCourse(t, crsRepo, "c2", "Orphan Course", "ghost", "SQL", 1000, nil)

	details, err := svc.QueryDetails(ctx)
	if err != nil {
		t.Fatalf("QueryDetails() failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("len(details) = %d; want 1", len(details))
	}
	if details[0].CourseID != "c1" || details[0].Instructor.UserID != inst.UserID {
		t.Errorf("details = %+v; want c1 joined with u1", details[0])
	}
}

func TestServiceLessons(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.AddLesson(ctx, course.NewLesson{CourseID: "nope", Title: "Intro"}); !errors.Is(err, course.ErrNotFound) {
		t.Fatalf("AddLesson() error = %v; want %v", err, course.ErrNotFound)
	}

	crs, err := svc.Create(ctx, course.NewCourse{
		Title:        "MongoDB Fundamentals",
		InstructorID: "u1",
		Category:     "MongoDB",
		Level:        course.LevelBeginner,
		Price:        4900,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	lsn, err := svc.AddLesson(ctx, course.NewLesson{CourseID: crs.CourseID, Title: "Documents and Collections", Order: 1})
	if err != nil {
		t.Fatalf("AddLesson() failed: %v", err)
	}
	if lsn.LessonID == "" {
		t.Error("LessonID is empty; want a generated id")
	}

	if err = svc.RemoveLesson(ctx, lsn.LessonID, crs.CourseID); err != nil {
		t.Fatalf("RemoveLesson() failed: %v", err)
	}
	if err = svc.RemoveLesson(ctx, lsn.LessonID, crs.CourseID); !errors.Is(err, course.ErrLessonNotFound) {
		t.Errorf("RemoveLesson() error = %v; want %v", err, course.ErrLessonNotFound)
	}
}
