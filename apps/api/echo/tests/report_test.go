package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/testutil"
)

func floatPtr(f float64) *float64 { return &f }

func Test_reportApi(t *testing.T) {
	app := setup(t)

	testutil.CreateUser(t, usrRepo, "u1", "inst@test.test", "Nadia", "Kone", user.RoleInstructor, true)
	testutil.CreateUser(t, usrRepo, "u3", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)
	testutil.CreateCourse(t, crsRepo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, floatPtr(4.5))
	testutil.CreateEnrollment(t, enrRepo, "e1", "u3", "c1", true, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	testutil.CreateAssignment(t, asgRepo, "a1", "c1", "Model a Library", time.Now().UTC().Add(24*time.Hour))
	testutil.CreateSubmission(t, asgRepo, "s1", "a1", "u3", floatPtr(88))

	tests := []httpTest{
		{
			name:     "enrollment metrics",
			method:   http.MethodGet,
			path:     "/v1/reports/enrollments",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []report.EnrollmentMetric{
				{CourseID: "c1", CourseTitle: "MongoDB Fundamentals", TotalEnrollments: 1},
			}),
		},
		{
			name:     "average rating",
			method:   http.MethodGet,
			path:     "/v1/reports/average-rating",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, report.RatingSummary{AverageRating: floatPtr(4.5), Count: 1}),
		},
		{
			name:     "completion rates",
			method:   http.MethodGet,
			path:     "/v1/reports/completion-rates",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []report.CompletionRate{
				{CourseID: "c1", CompletionRate: 1, TotalEnrolled: 1},
			}),
		},
		{
			name:     "top students with limit",
			method:   http.MethodGet,
			path:     "/v1/reports/top-students?limit=1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []report.StudentAverage{
				{StudentID: "u3", StudentName: "Lena Diallo", AverageGrade: floatPtr(88), Submissions: 1},
			}),
		},
		{
			name:     "monthly trend",
			method:   http.MethodGet,
			path:     "/v1/reports/monthly-trend",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []report.MonthlyTrend{
				{Year: 2025, Month: 3, TotalEnrollments: 1},
			}),
		},
		{
			name:     "engagement",
			method:   http.MethodGet,
			path:     "/v1/reports/engagement",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []report.EngagementMetric{
				{StudentID: "u3", StudentName: "Lena Diallo", TotalSubmissions: 1, AverageGrade: floatPtr(88)},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
