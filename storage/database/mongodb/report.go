package mongorepos

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/storage/database"
)

type reportRepository struct {
	courses     *mongo.Collection
	enrollments *mongo.Collection
	submissions *mongo.Collection
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *mongo.Database) *reportRepository {
	return &reportRepository{
		courses:     db.Collection(database.CoursesCollection),
		enrollments: db.Collection(database.EnrollmentsCollection),
		submissions: db.Collection(database.SubmissionsCollection),
	}
}

// lookupUser joins the users collection on the given local field.
func lookupUser(localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         database.UsersCollection,
		"localField":   localField,
		"foreignField": "userId",
		"as":           as,
	}}}
}

func aggregate[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline, what string) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregating %s", what)
	}
	var rows []T
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", what)
	}
	return rows, nil
}

func (repo reportRepository) EnrollmentMetrics(ctx context.Context) ([]report.EnrollmentMetric, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":              "$courseId",
			"totalEnrollments": bson.M{"$sum": 1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CoursesCollection,
			"localField":   "_id",
			"foreignField": "courseId",
			"as":           "course",
		}}},
		{{Key: "$unwind", Value: "$course"}},
		{{Key: "$project", Value: bson.M{
			"_id":              0,
			"courseId":         "$_id",
			"courseTitle":      "$course.title",
			"totalEnrollments": 1,
		}}},
	}
	return aggregate[report.EnrollmentMetric](ctx, repo.enrollments, pipeline, "enrollment metrics")
}

func (repo reportRepository) AverageCourseRating(ctx context.Context) (report.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
			"count":         bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "averageRating": 1, "count": 1}}},
	}
	rows, err := aggregate[report.RatingSummary](ctx, repo.courses, pipeline, "average course rating")
	if err != nil {
		return report.RatingSummary{}, err
	}
	if len(rows) == 0 {
		return report.RatingSummary{}, nil
	}
	return rows[0], nil
}

func (repo reportRepository) CoursesByCategory(ctx context.Context) ([]report.CategorySummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$category",
			"courses":       bson.M{"$push": "$title"},
			"averageRating": bson.M{"$avg": "$rating"},
			"totalCourses":  bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"category":      "$_id",
			"courses":       1,
			"averageRating": 1,
			"totalCourses":  1,
		}}},
	}
	return aggregate[report.CategorySummary](ctx, repo.courses, pipeline, "courses by category")
}

// studentAveragePipeline groups submissions per student with grade average,
// optionally ranked and limited, then joins the student's name.
func studentAveragePipeline(limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$studentId",
			"averageGrade": bson.M{"$avg": "$grade"},
			"submissions":  bson.M{"$sum": 1},
		}}},
	}
	if limit > 0 {
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.M{"averageGrade": -1}}},
			bson.D{{Key: "$limit", Value: limit}},
		)
	}
	return append(pipeline,
		lookupUser("_id", "student"),
		bson.D{{Key: "$unwind", Value: "$student"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"studentId":    "$_id",
			"studentName":  bson.M{"$concat": bson.A{"$student.firstName", " ", "$student.lastName"}},
			"averageGrade": 1,
			"submissions":  1,
		}}},
	)
}

func (repo reportRepository) AverageGradePerStudent(ctx context.Context) ([]report.StudentAverage, error) {
	return aggregate[report.StudentAverage](ctx, repo.submissions, studentAveragePipeline(0), "average grade per student")
}

func (repo reportRepository) TopPerformingStudents(ctx context.Context, limit int) ([]report.StudentAverage, error) {
	return aggregate[report.StudentAverage](ctx, repo.submissions, studentAveragePipeline(limit), "top performing students")
}

func (repo reportRepository) CourseCompletionRates(ctx context.Context) ([]report.CompletionRate, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$courseId",
			"total":     bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 1, 0}}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"courseId": "$_id",
			"completionRate": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$total", 0}},
				0,
				bson.M{"$divide": bson.A{"$completed", "$total"}},
			}},
			"totalEnrolled": "$total",
		}}},
	}
	return aggregate[report.CompletionRate](ctx, repo.enrollments, pipeline, "course completion rates")
}

func (repo reportRepository) StudentsPerInstructor(ctx context.Context) ([]report.InstructorStudents, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CoursesCollection,
			"localField":   "courseId",
			"foreignField": "courseId",
			"as":           "course",
		}}},
		{{Key: "$unwind", Value: "$course"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$course.instructorId",
			"students":      bson.M{"$addToSet": "$studentId"},
			"coursesTaught": bson.M{"$addToSet": "$course.courseId"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"instructorId":  "$_id",
			"totalStudents": bson.M{"$size": "$students"},
			"coursesTaught": 1,
		}}},
	}
	return aggregate[report.InstructorStudents](ctx, repo.enrollments, pipeline, "students per instructor")
}

func (repo reportRepository) AverageRatingPerInstructor(ctx context.Context) ([]report.InstructorRating, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$instructorId",
			"averageRating": bson.M{"$avg": "$rating"},
			"courses":       bson.M{"$push": "$title"},
		}}},
		lookupUser("_id", "instructor"),
		{{Key: "$unwind", Value: "$instructor"}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"instructorId":   "$_id",
			"instructorName": bson.M{"$concat": bson.A{"$instructor.firstName", " ", "$instructor.lastName"}},
			"averageRating":  1,
			"courses":        1,
		}}},
	}
	return aggregate[report.InstructorRating](ctx, repo.courses, pipeline, "average rating per instructor")
}

func (repo reportRepository) RevenuePerInstructor(ctx context.Context) ([]report.InstructorRevenue, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CoursesCollection,
			"localField":   "courseId",
			"foreignField": "courseId",
			"as":           "course",
		}}},
		{{Key: "$unwind", Value: "$course"}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$course.instructorId",
			"revenue": bson.M{"$sum": "$course.price"},
			"courses": bson.M{"$addToSet": "$course.courseId"},
		}}},
		lookupUser("_id", "instructor"),
		{{Key: "$unwind", Value: "$instructor"}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"instructorId":   "$_id",
			"instructorName": bson.M{"$concat": bson.A{"$instructor.firstName", " ", "$instructor.lastName"}},
			"revenue":        1,
			"courses":        1,
		}}},
	}
	return aggregate[report.InstructorRevenue](ctx, repo.enrollments, pipeline, "revenue per instructor")
}

func (repo reportRepository) MonthlyEnrollmentTrend(ctx context.Context) ([]report.MonthlyTrend, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$enrollmentDate"},
				"month": bson.M{"$month": "$enrollmentDate"},
			},
			"totalEnrollments": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":              0,
			"year":             "$_id.year",
			"month":            "$_id.month",
			"totalEnrollments": 1,
		}}},
	}
	return aggregate[report.MonthlyTrend](ctx, repo.enrollments, pipeline, "monthly enrollment trend")
}

func (repo reportRepository) PopularCategories(ctx context.Context, limit int) ([]report.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "totalCourses": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"totalCourses": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{"_id": 0, "category": "$_id", "totalCourses": 1}}},
	}
	return aggregate[report.CategoryCount](ctx, repo.courses, pipeline, "popular categories")
}

func (repo reportRepository) StudentEngagement(ctx context.Context) ([]report.EngagementMetric, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":              "$studentId",
			"totalSubmissions": bson.M{"$sum": 1},
			"averageGrade":     bson.M{"$avg": "$grade"},
		}}},
		lookupUser("_id", "student"),
		{{Key: "$unwind", Value: "$student"}},
		{{Key: "$project", Value: bson.M{
			"_id":              0,
			"studentId":        "$_id",
			"studentName":      bson.M{"$concat": bson.A{"$student.firstName", " ", "$student.lastName"}},
			"totalSubmissions": 1,
			"averageGrade":     1,
		}}},
	}
	return aggregate[report.EngagementMetric](ctx, repo.submissions, pipeline, "student engagement")
}
