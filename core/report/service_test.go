package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/core/user"
	inmemdb "github.com/trezcool/eduhub/storage/database/inmem"
	"github.com/trezcool/eduhub/testutil"
)

func floatPtr(f float64) *float64 { return &f }

// seedReportData loads a small, fully known data set:
//
//	u1 instructs c1 (rated 4.0, 4900) and c2 (unrated, 7900); u2 instructs nothing.
//	u3 enrolled in c1 (completed) and c2; u4 enrolled in c1.
//	u3 submitted twice (90, 70); u4 submitted once, ungraded.
func seedReportData(t *testing.T, db *inmemdb.DB) {
	t.Helper()
	usrRepo := inmemdb.NewUserRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	enrRepo := inmemdb.NewEnrollmentRepository(db)
	asgRepo := inmemdb.NewAssignmentRepository(db)

	testutil.CreateUser(t, usrRepo, "u1", "inst@test.test", "Nadia", "Kone", user.RoleInstructor, true)
	testutil.CreateUser(t, usrRepo, "u3", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)
	testutil.CreateUser(t, usrRepo, "u4", "theo@test.test", "Theo", "Mensah", user.RoleStudent, true)

	testutil.CreateCourse(t, crsRepo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, floatPtr(4.0))
	testutil.CreateCourse(t, crsRepo, "c2", "Data Pipelines with Python", "u1", "Data Engineering", 7900, nil)

	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
	testutil.CreateEnrollment(t, enrRepo, "e1", "u3", "c1", true, jan)
	testutil.CreateEnrollment(t, enrRepo, "e2", "u4", "c1", false, jan.AddDate(0, 0, 5))
	testutil.CreateEnrollment(t, enrRepo, "e3", "u3", "c2", false, feb)

	testutil.CreateAssignment(t, asgRepo, "a1", "c1", "Model a Library", time.Now().UTC().Add(24*time.Hour))
	testutil.CreateSubmission(t, asgRepo, "s1", "a1", "u3", floatPtr(90))
	testutil.CreateSubmission(t, asgRepo, "s2", "a1", "u3", floatPtr(70))
	testutil.CreateSubmission(t, asgRepo, "s3", "a1", "u4", nil)
}

func setup(t *testing.T) *report.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	seedReportData(t, db)
	return report.NewService(inmemdb.NewReportRepository(db))
}

func TestServiceEnrollmentMetrics(t *testing.T) {
	svc := setup(t)

	rows, err := svc.EnrollmentMetrics(context.Background())
	if err != nil {
		t.Fatalf("EnrollmentMetrics() failed: %v", err)
	}
	want := []report.EnrollmentMetric{
		{CourseID: "c1", CourseTitle: "MongoDB Fundamentals", TotalEnrollments: 2},
		{CourseID: "c2", CourseTitle: "Data Pipelines with Python", TotalEnrollments: 1},
	}
	testutil.AssertJSONEqual(t, want, rows)
}

func TestServiceAverageCourseRating(t *testing.T) {
	svc := setup(t)

	row, err := svc.AverageCourseRating(context.Background())
	if err != nil {
		t.Fatalf("AverageCourseRating() failed: %v", err)
	}
	if row.Count != 2 {
		t.Errorf("Count = %d; want 2", row.Count)
	}
	// only the rated course contributes to the average
	if row.AverageRating == nil || *row.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v; want 4.0", row.AverageRating)
	}
}

func TestServiceAverageGradePerStudent(t *testing.T) {
	svc := setup(t)

	rows, err := svc.AverageGradePerStudent(context.Background())
	if err != nil {
		t.Fatalf("AverageGradePerStudent() failed: %v", err)
	}
	want := []report.StudentAverage{
		{StudentID: "u3", StudentName: "Lena Diallo", AverageGrade: floatPtr(80), Submissions: 2},
		{StudentID: "u4", StudentName: "Theo Mensah", AverageGrade: nil, Submissions: 1},
	}
	testutil.AssertJSONEqual(t, want, rows)
}

func TestServiceTopPerformingStudents(t *testing.T) {
	svc := setup(t)

	rows, err := svc.TopPerformingStudents(context.Background(), 1)
	if err != nil {
		t.Fatalf("TopPerformingStudents() failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d; want 1", len(rows))
	}
	if rows[0].StudentID != "u3" {
		t.Errorf("StudentID = %q; want u3 (highest average)", rows[0].StudentID)
	}
}

func TestServiceCourseCompletionRates(t *testing.T) {
	svc := setup(t)

	rows, err := svc.CourseCompletionRates(context.Background())
	if err != nil {
		t.Fatalf("CourseCompletionRates() failed: %v", err)
	}
	want := []report.CompletionRate{
		{CourseID: "c1", CompletionRate: 0.5, TotalEnrolled: 2},
		{CourseID: "c2", CompletionRate: 0, TotalEnrolled: 1},
	}
	testutil.AssertJSONEqual(t, want, rows)
}

func TestServiceInstructorReports(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	students, err := svc.StudentsPerInstructor(ctx)
	if err != nil {
		t.Fatalf("StudentsPerInstructor() failed: %v", err)
	}
	wantStudents := []report.InstructorStudents{
		{InstructorID: "u1", TotalStudents: 2, CoursesTaught: []string{"c1", "c2"}},
	}
	testutil.AssertJSONEqual(t, wantStudents, students)

	ratings, err := svc.AverageRatingPerInstructor(ctx)
	if err != nil {
		t.Fatalf("AverageRatingPerInstructor() failed: %v", err)
	}
	wantRatings := []report.InstructorRating{
		{
			InstructorID:   "u1",
			InstructorName: "Nadia Kone",
			AverageRating:  floatPtr(4.0),
			Courses:        []string{"Data Pipelines with Python", "MongoDB Fundamentals"},
		},
	}
	testutil.AssertJSONEqual(t, wantRatings, ratings)

	revenue, err := svc.RevenuePerInstructor(ctx)
	if err != nil {
		t.Fatalf("RevenuePerInstructor() failed: %v", err)
	}
	// c1 sold twice, c2 once
	wantRevenue := []report.InstructorRevenue{
		{
			InstructorID:   "u1",
			InstructorName: "Nadia Kone",
			Revenue:        2*4900 + 7900,
			Courses:        []string{"c1", "c2"},
		},
	}
	testutil.AssertJSONEqual(t, wantRevenue, revenue)
}

func TestServiceMonthlyEnrollmentTrend(t *testing.T) {
	svc := setup(t)

	rows, err := svc.MonthlyEnrollmentTrend(context.Background())
	if err != nil {
		t.Fatalf("MonthlyEnrollmentTrend() failed: %v", err)
	}
	want := []report.MonthlyTrend{
		{Year: 2025, Month: 1, TotalEnrollments: 2},
		{Year: 2025, Month: 2, TotalEnrollments: 1},
	}
	testutil.AssertJSONEqual(t, want, rows)
}

func TestServicePopularCategories(t *testing.T) {
	svc := setup(t)

	rows, err := svc.PopularCategories(context.Background(), 0)
	if err != nil {
		t.Fatalf("PopularCategories() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d; want 2", len(rows))
	}
	for _, row := range rows {
		if row.TotalCourses != 1 {
			t.Errorf("TotalCourses = %d for %q; want 1", row.TotalCourses, row.Category)
		}
	}
}

func TestServiceStudentEngagement(t *testing.T) {
	svc := setup(t)

	rows, err := svc.StudentEngagement(context.Background())
	if err != nil {
		t.Fatalf("StudentEngagement() failed: %v", err)
	}
	want := []report.EngagementMetric{
		{StudentID: "u3", StudentName: "Lena Diallo", TotalSubmissions: 2, AverageGrade: floatPtr(80)},
		{StudentID: "u4", StudentName: "Theo Mensah", TotalSubmissions: 1, AverageGrade: nil},
	}
	testutil.AssertJSONEqual(t, want, rows)
}
