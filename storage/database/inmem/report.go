package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/eduhub/core/report"
)

// reportRepository computes the aggregation catalog over the in-memory
// tables. Results are sorted on their natural key so tests are stable.
type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *DB) report.Repository {
	return &reportRepository{db: db}
}

func avg(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	return &mean
}

func (repo *reportRepository) EnrollmentMetrics(_ context.Context) ([]report.EnrollmentMetric, error) {
	repo.db.enrollments.RLock()
	defer repo.db.enrollments.RUnlock()
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()

	counts := make(map[string]int64)
	for _, enr := range repo.db.enrollments.table {
		counts[enr.CourseID]++
	}

	metrics := make([]report.EnrollmentMetric, 0, len(counts))
	for courseID, total := range counts {
		crs, ok := repo.db.courses.table[courseID]
		if !ok {
			continue
		}
		metrics = append(metrics, report.EnrollmentMetric{
			CourseID:         courseID,
			CourseTitle:      crs.Title,
			TotalEnrollments: total,
		})
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].CourseID < metrics[j].CourseID })
	return metrics, nil
}

func (repo *reportRepository) AverageCourseRating(_ context.Context) (report.RatingSummary, error) {
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()

	var ratings []float64
	var count int64
	for _, crs := range repo.db.courses.table {
		count++
		if crs.Rating != nil {
			ratings = append(ratings, *crs.Rating)
		}
	}
	if count == 0 {
		return report.RatingSummary{}, nil
	}
	return report.RatingSummary{AverageRating: avg(ratings), Count: count}, nil
}

func (repo *reportRepository) CoursesByCategory(_ context.Context) ([]report.CategorySummary, error) {
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()

	titles := make(map[string][]string)
	ratings := make(map[string][]float64)
	totals := make(map[string]int64)
	for _, crs := range repo.db.courses.table {
		titles[crs.Category] = append(titles[crs.Category], crs.Title)
		if crs.Rating != nil {
			ratings[crs.Category] = append(ratings[crs.Category], *crs.Rating)
		}
		totals[crs.Category]++
	}

	summaries := make([]report.CategorySummary, 0, len(totals))
	for category, total := range totals {
		sort.Strings(titles[category])
		summaries = append(summaries, report.CategorySummary{
			Category:      category,
			Courses:       titles[category],
			AverageRating: avg(ratings[category]),
			TotalCourses:  total,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Category < summaries[j].Category })
	return summaries, nil
}

// studentAverages groups graded submissions per student; students with no
// submissions at all do not appear.
func (repo *reportRepository) studentAverages() []report.StudentAverage {
	repo.db.submissions.RLock()
	defer repo.db.submissions.RUnlock()
	repo.db.users.RLock()
	defer repo.db.users.RUnlock()

	grades := make(map[string][]float64)
	counts := make(map[string]int64)
	for _, sub := range repo.db.submissions.table {
		counts[sub.StudentID]++
		if sub.Grade != nil {
			grades[sub.StudentID] = append(grades[sub.StudentID], *sub.Grade)
		}
	}

	averages := make([]report.StudentAverage, 0, len(counts))
	for studentID, count := range counts {
		usr, ok := repo.db.users.table[studentID]
		if !ok {
			continue
		}
		averages = append(averages, report.StudentAverage{
			StudentID:    studentID,
			StudentName:  usr.Name(),
			AverageGrade: avg(grades[studentID]),
			Submissions:  count,
		})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].StudentID < averages[j].StudentID })
	return averages
}

func (repo *reportRepository) AverageGradePerStudent(_ context.Context) ([]report.StudentAverage, error) {
	return repo.studentAverages(), nil
}

func (repo *reportRepository) TopPerformingStudents(_ context.Context, limit int) ([]report.StudentAverage, error) {
	averages := repo.studentAverages()
	sort.SliceStable(averages, func(i, j int) bool {
		gi, gj := averages[i].AverageGrade, averages[j].AverageGrade
		switch {
		case gi == nil:
			return false
		case gj == nil:
			return true
		default:
			return *gi > *gj
		}
	})
	if len(averages) > limit {
		averages = averages[:limit]
	}
	return averages, nil
}

func (repo *reportRepository) CourseCompletionRates(_ context.Context) ([]report.CompletionRate, error) {
	repo.db.enrollments.RLock()
	defer repo.db.enrollments.RUnlock()

	totals := make(map[string]int64)
	completed := make(map[string]int64)
	for _, enr := range repo.db.enrollments.table {
		totals[enr.CourseID]++
		if enr.Completed {
			completed[enr.CourseID]++
		}
	}

	rates := make([]report.CompletionRate, 0, len(totals))
	for courseID, total := range totals {
		var rate float64
		if total > 0 {
			rate = float64(completed[courseID]) / float64(total)
		}
		rates = append(rates, report.CompletionRate{
			CourseID:       courseID,
			CompletionRate: rate,
			TotalEnrolled:  total,
		})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].CourseID < rates[j].CourseID })
	return rates, nil
}

func (repo *reportRepository) StudentsPerInstructor(_ context.Context) ([]report.InstructorStudents, error) {
	repo.db.enrollments.RLock()
	defer repo.db.enrollments.RUnlock()
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()

	students := make(map[string]map[string]struct{})
	courses := make(map[string]map[string]struct{})
	for _, enr := range repo.db.enrollments.table {
		crs, ok := repo.db.courses.table[enr.CourseID]
		if !ok {
			continue
		}
		if students[crs.InstructorID] == nil {
			students[crs.InstructorID] = make(map[string]struct{})
			courses[crs.InstructorID] = make(map[string]struct{})
		}
		students[crs.InstructorID][enr.StudentID] = struct{}{}
		courses[crs.InstructorID][crs.CourseID] = struct{}{}
	}

	rows := make([]report.InstructorStudents, 0, len(students))
	for instructorID, studentSet := range students {
		taught := make([]string, 0, len(courses[instructorID]))
		for courseID := range courses[instructorID] {
			taught = append(taught, courseID)
		}
		sort.Strings(taught)
		rows = append(rows, report.InstructorStudents{
			InstructorID:  instructorID,
			TotalStudents: int64(len(studentSet)),
			CoursesTaught: taught,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].InstructorID < rows[j].InstructorID })
	return rows, nil
}

func (repo *reportRepository) AverageRatingPerInstructor(_ context.Context) ([]report.InstructorRating, error) {
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()
	repo.db.users.RLock()
	defer repo.db.users.RUnlock()

	ratings := make(map[string][]float64)
	titles := make(map[string][]string)
	for _, crs := range repo.db.courses.table {
		if crs.Rating != nil {
			ratings[crs.InstructorID] = append(ratings[crs.InstructorID], *crs.Rating)
		}
		titles[crs.InstructorID] = append(titles[crs.InstructorID], crs.Title)
	}

	rows := make([]report.InstructorRating, 0, len(titles))
	for instructorID, courseTitles := range titles {
		usr, ok := repo.db.users.table[instructorID]
		if !ok {
			continue
		}
		sort.Strings(courseTitles)
		rows = append(rows, report.InstructorRating{
			InstructorID:   instructorID,
			InstructorName: usr.Name(),
			AverageRating:  avg(ratings[instructorID]),
			Courses:        courseTitles,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].InstructorID < rows[j].InstructorID })
	return rows, nil
}

func (repo *reportRepository) RevenuePerInstructor(_ context.Context) ([]report.InstructorRevenue, error) {
	repo.db.enrollments.RLock()
	defer repo.db.enrollments.RUnlock()
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()
	repo.db.users.RLock()
	defer repo.db.users.RUnlock()

	revenue := make(map[string]int64)
	courses := make(map[string]map[string]struct{})
	for _, enr := range repo.db.enrollments.table {
		crs, ok := repo.db.courses.table[enr.CourseID]
		if !ok {
			continue
		}
		revenue[crs.InstructorID] += int64(crs.Price)
		if courses[crs.InstructorID] == nil {
			courses[crs.InstructorID] = make(map[string]struct{})
		}
		courses[crs.InstructorID][crs.CourseID] = struct{}{}
	}

	rows := make([]report.InstructorRevenue, 0, len(revenue))
	for instructorID, total := range revenue {
		usr, ok := repo.db.users.table[instructorID]
		if !ok {
			continue
		}
		sold := make([]string, 0, len(courses[instructorID]))
		for courseID := range courses[instructorID] {
			sold = append(sold, courseID)
		}
		sort.Strings(sold)
		rows = append(rows, report.InstructorRevenue{
			InstructorID:   instructorID,
			InstructorName: usr.Name(),
			Revenue:        total,
			Courses:        sold,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].InstructorID < rows[j].InstructorID })
	return rows, nil
}

func (repo *reportRepository) MonthlyEnrollmentTrend(_ context.Context) ([]report.MonthlyTrend, error) {
	repo.db.enrollments.RLock()
	defer repo.db.enrollments.RUnlock()

	type yearMonth struct {
		year, month int
	}
	counts := make(map[yearMonth]int64)
	for _, enr := range repo.db.enrollments.table {
		date := enr.EnrollmentDate.UTC()
		counts[yearMonth{date.Year(), int(date.Month())}]++
	}

	trend := make([]report.MonthlyTrend, 0, len(counts))
	for ym, total := range counts {
		trend = append(trend, report.MonthlyTrend{Year: ym.year, Month: ym.month, TotalEnrollments: total})
	}
	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})
	return trend, nil
}

func (repo *reportRepository) PopularCategories(_ context.Context, limit int) ([]report.CategoryCount, error) {
	repo.db.courses.RLock()
	defer repo.db.courses.RUnlock()

	counts := make(map[string]int64)
	for _, crs := range repo.db.courses.table {
		counts[crs.Category]++
	}

	rows := make([]report.CategoryCount, 0, len(counts))
	for category, total := range counts {
		rows = append(rows, report.CategoryCount{Category: category, TotalCourses: total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalCourses != rows[j].TotalCourses {
			return rows[i].TotalCourses > rows[j].TotalCourses
		}
		return rows[i].Category < rows[j].Category
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (repo *reportRepository) StudentEngagement(_ context.Context) ([]report.EngagementMetric, error) {
	metrics := make([]report.EngagementMetric, 0)
	for _, row := range repo.studentAverages() {
		metrics = append(metrics, report.EngagementMetric{
			StudentID:        row.StudentID,
			StudentName:      row.StudentName,
			TotalSubmissions: row.Submissions,
			AverageGrade:     row.AverageGrade,
		})
	}
	return metrics, nil
}
