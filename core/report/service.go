// Package report exposes the aggregation catalog: cross-collection metrics
// computed by the database engine (enrollment counts, grade averages,
// revenue per instructor, trends).
package report

import "context"

const defaultLimit = 5

type (
	Repository interface {
		// EnrollmentMetrics counts total enrollments per course.
		EnrollmentMetrics(ctx context.Context) ([]EnrollmentMetric, error)
		// AverageCourseRating averages the rating over all courses.
		AverageCourseRating(ctx context.Context) (RatingSummary, error)
		// CoursesByCategory groups courses by category with titles and rating average.
		CoursesByCategory(ctx context.Context) ([]CategorySummary, error)
		// AverageGradePerStudent averages submission grades per student.
		AverageGradePerStudent(ctx context.Context) ([]StudentAverage, error)
		// CourseCompletionRates computes the completed/total ratio per course.
		CourseCompletionRates(ctx context.Context) ([]CompletionRate, error)
		// TopPerformingStudents ranks students by average grade, best first.
		TopPerformingStudents(ctx context.Context, limit int) ([]StudentAverage, error)
		// StudentsPerInstructor counts distinct enrolled students per instructor.
		StudentsPerInstructor(ctx context.Context) ([]InstructorStudents, error)
		// AverageRatingPerInstructor averages course ratings per instructor.
		AverageRatingPerInstructor(ctx context.Context) ([]InstructorRating, error)
		// RevenuePerInstructor sums enrolled courses' prices per instructor.
		RevenuePerInstructor(ctx context.Context) ([]InstructorRevenue, error)
		// MonthlyEnrollmentTrend counts enrollments per (year, month), ascending.
		MonthlyEnrollmentTrend(ctx context.Context) ([]MonthlyTrend, error)
		// PopularCategories ranks categories by course count, biggest first.
		PopularCategories(ctx context.Context, limit int) ([]CategoryCount, error)
		// StudentEngagement counts submissions and averages grades per student.
		StudentEngagement(ctx context.Context) ([]EngagementMetric, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) EnrollmentMetrics(ctx context.Context) ([]EnrollmentMetric, error) {
	return svc.repo.EnrollmentMetrics(ctx)
}

func (svc *Service) AverageCourseRating(ctx context.Context) (RatingSummary, error) {
	return svc.repo.AverageCourseRating(ctx)
}

func (svc *Service) CoursesByCategory(ctx context.Context) ([]CategorySummary, error) {
	return svc.repo.CoursesByCategory(ctx)
}

func (svc *Service) AverageGradePerStudent(ctx context.Context) ([]StudentAverage, error) {
	return svc.repo.AverageGradePerStudent(ctx)
}

func (svc *Service) CourseCompletionRates(ctx context.Context) ([]CompletionRate, error) {
	return svc.repo.CourseCompletionRates(ctx)
}

func (svc *Service) TopPerformingStudents(ctx context.Context, limit int) ([]StudentAverage, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return svc.repo.TopPerformingStudents(ctx, limit)
}

func (svc *Service) StudentsPerInstructor(ctx context.Context) ([]InstructorStudents, error) {
	return svc.repo.StudentsPerInstructor(ctx)
}

func (svc *Service) AverageRatingPerInstructor(ctx context.Context) ([]InstructorRating, error) {
	return svc.repo.AverageRatingPerInstructor(ctx)
}

func (svc *Service) RevenuePerInstructor(ctx context.Context) ([]InstructorRevenue, error) {
	return svc.repo.RevenuePerInstructor(ctx)
}

func (svc *Service) MonthlyEnrollmentTrend(ctx context.Context) ([]MonthlyTrend, error) {
	return svc.repo.MonthlyEnrollmentTrend(ctx)
}

func (svc *Service) PopularCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return svc.repo.PopularCategories(ctx, limit)
}

func (svc *Service) StudentEngagement(ctx context.Context) ([]EngagementMetric, error) {
	return svc.repo.StudentEngagement(ctx)
}
