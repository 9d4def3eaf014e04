package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/schema"
)

// Collections
const (
	UsersCollection       = "users"
	CoursesCollection     = "courses"
	EnrollmentsCollection = "enrollments"
	LessonsCollection     = "lessons"
	AssignmentsCollection = "assignments"
	SubmissionsCollection = "submissions"
)

var AllCollections = []string{
	UsersCollection,
	CoursesCollection,
	EnrollmentsCollection,
	LessonsCollection,
	AssignmentsCollection,
	SubmissionsCollection,
}

// Open connects to the configured database and waits for it to be ready.
func Open(ctx context.Context) (*mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(core.Conf.GetString("databaseUri")))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, client); err != nil {
		return nil, err
	}
	return client.Database(core.Conf.GetString("databaseName")), nil
}

// Close disconnects the underlying client.
func Close(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *mongo.Client) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = client.Ping(ctx, nil)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// CreateCollections creates each collection with its $jsonSchema validator
// attached. Existing collections are left alone.
func CreateCollections(ctx context.Context, db *mongo.Database, validators map[string]schema.Validator) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return errors.Wrap(err, "listing collections")
	}
	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	for name, validator := range validators {
		if _, ok := existingSet[name]; ok {
			continue
		}
		opts := options.CreateCollection().SetValidator(bson.M(validator))
		if err = db.CreateCollection(ctx, name, opts); err != nil {
			return errors.Wrapf(err, "creating collection %s", name)
		}
	}
	return nil
}

// EnsureIndexes creates the indexes backing the query catalog.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CoursesCollection: {
			{Keys: bson.D{{Key: "title", Value: "text"}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		AssignmentsCollection: {
			{Keys: bson.D{{Key: "dueDate", Value: 1}}},
		},
		EnrollmentsCollection: {
			{Keys: bson.D{{Key: "studentId", Value: 1}}},
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "creating indexes on %s", coll)
		}
	}
	return nil
}

// Drop removes all known collections, to start afresh.
func Drop(ctx context.Context, db *mongo.Database) error {
	for _, name := range AllCollections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return errors.Wrapf(err, "dropping collection %s", name)
		}
	}
	return nil
}

// Seed bulk-inserts documents per collection, as produced by the fixtures loader.
func Seed(ctx context.Context, db *mongo.Database, docs map[string][]map[string]interface{}) error {
	for coll, documents := range docs {
		if len(documents) == 0 {
			continue
		}
		batch := make([]interface{}, len(documents))
		for i, doc := range documents {
			batch[i] = doc
		}
		if _, err := db.Collection(coll).InsertMany(ctx, batch); err != nil {
			return errors.Wrapf(err, "seeding collection %s", coll)
		}
	}
	return nil
}
