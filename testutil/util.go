package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	userID, email, first, last, role string,
	isActive bool,
	dateJoined ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(dateJoined) > 0 {
		tstamp = dateJoined[0].UTC()
	}
	usr, err := repo.CreateUser(context.Background(), user.User{
		UserID:     userID,
		Email:      email,
		FirstName:  first,
		LastName:   last,
		Role:       role,
		DateJoined: tstamp,
		IsActive:   isActive,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	courseID, title, instructorID, category string,
	price int,
	rating *float64,
) course.Course {
	t.Helper()

	now := time.Now().UTC()
	crs, err := repo.CreateCourse(context.Background(), course.Course{
		CourseID:     courseID,
		Title:        title,
		InstructorID: instructorID,
		Category:     category,
		Level:        course.LevelBeginner,
		Duration:     20,
		Price:        price,
		Rating:       rating,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateEnrollment(
	t *testing.T,
	repo enrollment.Repository,
	enrollmentID, studentID, courseID string,
	completed bool,
	enrolledAt ...time.Time,
) enrollment.Enrollment {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(enrolledAt) > 0 {
		tstamp = enrolledAt[0].UTC()
	}
	enr, err := repo.CreateEnrollment(context.Background(), enrollment.Enrollment{
		EnrollmentID:   enrollmentID,
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: tstamp,
		Completed:      completed,
	})
	if err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}
	return enr
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	assignmentID, courseID, title string,
	dueDate time.Time,
) assignment.Assignment {
	t.Helper()

	asg, err := repo.CreateAssignment(context.Background(), assignment.Assignment{
		AssignmentID: assignmentID,
		CourseID:     courseID,
		Title:        title,
		DueDate:      dueDate.UTC(),
		MaxScore:     100,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateSubmission(
	t *testing.T,
	repo assignment.Repository,
	submissionID, assignmentID, studentID string,
	grade *float64,
) assignment.Submission {
	t.Helper()

	sub, err := repo.CreateSubmission(context.Background(), assignment.Submission{
		SubmissionID: submissionID,
		AssignmentID: assignmentID,
		StudentID:    studentID,
		SubmittedAt:  time.Now().UTC(),
		Content:      "answer",
	})
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}
	if grade != nil {
		if err = repo.GradeSubmission(context.Background(), submissionID, *grade, nil); err != nil {
			t.Fatalf("GradeSubmission() failed: %v", err)
		}
		sub.Grade = grade
	}
	return sub
}

// AssertJSONEqual fails with a unified diff when the two objects' JSON
// renderings differ.
func AssertJSONEqual(t *testing.T, want, got interface{}) {
	t.Helper()

	wantData, err := json.MarshalIndent(want, "", "  ")
	if err != nil {
		t.Fatalf("AssertJSONEqual() failed to marshal want: %v", err)
	}
	gotData, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("AssertJSONEqual() failed to marshal got: %v", err)
	}
	if string(wantData) == string(gotData) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(wantData)),
		B:        difflib.SplitLines(string(gotData)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("AssertJSONEqual() failed to diff: %v", err)
	}
	t.Errorf("failed! data mismatch:\n%s", diff)
}
