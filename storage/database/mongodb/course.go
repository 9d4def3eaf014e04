package mongorepos

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/storage/database"
)

type courseRepository struct {
	col     *mongo.Collection
	lessons *mongo.Collection
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *mongo.Database) *courseRepository {
	return &courseRepository{
		col:     db.Collection(database.CoursesCollection),
		lessons: db.Collection(database.LessonsCollection),
	}
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	res, err := repo.col.InsertOne(ctx, crs)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "creating course")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		crs.ID = oid
	}
	return crs, nil
}

func (repo courseRepository) GetCourseByID(ctx context.Context, courseID string) (course.Course, error) {
	var crs course.Course
	err := repo.col.FindOne(ctx, bson.M{"courseId": courseID}).Decode(&crs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return course.Course{}, course.ErrNotFound
	}
	if err != nil {
		return course.Course{}, errors.Wrap(err, "getting course")
	}
	return crs, nil
}

func (repo courseRepository) FilterCourses(ctx context.Context, filter course.QueryFilter) ([]course.Course, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Title != "" {
		query["title"] = bson.M{"$regex": filter.Title, "$options": "i"}
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		price := bson.M{}
		if filter.PriceMin != nil {
			price["$gte"] = *filter.PriceMin
		}
		if filter.PriceMax != nil {
			price["$lte"] = *filter.PriceMax
		}
		query["price"] = price
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	var courses []course.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, errors.Wrap(err, "decoding courses")
	}
	return courses, nil
}

func (repo courseRepository) QueryCourseDetails(ctx context.Context) ([]course.Details, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.UsersCollection,
			"localField":   "instructorId",
			"foreignField": "userId",
			"as":           "instructor",
		}}},
		{{Key: "$unwind", Value: "$instructor"}},
	}
	cursor, err := repo.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "querying course details")
	}
	var details []course.Details
	if err = cursor.All(ctx, &details); err != nil {
		return nil, errors.Wrap(err, "decoding course details")
	}
	return details, nil
}

func (repo courseRepository) PublishCourse(ctx context.Context, courseID string) error {
	res, err := repo.col.UpdateOne(ctx, bson.M{"courseId": courseID}, bson.M{"$set": bson.M{"isPublished": true}})
	if err != nil {
		return errors.Wrap(err, "publishing course")
	}
	if res.MatchedCount == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (repo courseRepository) AddCourseTags(ctx context.Context, courseID string, tags []string) error {
	update := bson.M{"$addToSet": bson.M{"tags": bson.M{"$each": tags}}}
	res, err := repo.col.UpdateOne(ctx, bson.M{"courseId": courseID}, update)
	if err != nil {
		return errors.Wrap(err, "adding course tags")
	}
	if res.MatchedCount == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (repo courseRepository) CreateLesson(ctx context.Context, lsn course.Lesson) (course.Lesson, error) {
	res, err := repo.lessons.InsertOne(ctx, lsn)
	if err != nil {
		return course.Lesson{}, errors.Wrap(err, "creating lesson")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		lsn.ID = oid
	}
	return lsn, nil
}

func (repo courseRepository) DetachLesson(ctx context.Context, lessonID, courseID string) error {
	filter := bson.M{"lessonId": lessonID, "courseId": courseID}
	res, err := repo.lessons.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"courseId": ""}})
	if err != nil {
		return errors.Wrap(err, "detaching lesson")
	}
	if res.MatchedCount == 0 {
		return course.ErrLessonNotFound
	}
	return nil
}
