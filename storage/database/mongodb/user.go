package mongorepos

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/storage/database"
)

type userRepository struct {
	col *mongo.Collection
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{col: db.Collection(database.UsersCollection)}
}

func (repo userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	count, err := repo.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if count > 0 {
		return user.ErrEmailExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	res, err := repo.col.InsertOne(ctx, usr)
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		usr.ID = oid
	}
	return usr, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, userID string) (user.User, error) {
	var usr user.User
	err := repo.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&usr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, errors.Wrap(err, "getting user")
	}
	return usr, nil
}

func (repo userRepository) GetUsersByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	return repo.find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	return repo.find(ctx, bson.M{})
}

func (repo userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if !filter.JoinedSince.IsZero() {
		query["dateJoined"] = bson.M{"$gte": filter.JoinedSince}
	}
	return repo.find(ctx, query)
}

func (repo userRepository) UpdateProfile(ctx context.Context, userID string, profile user.Profile) error {
	res, err := repo.col.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": bson.M{"profile": profile}})
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo userRepository) SetUserActive(ctx context.Context, userID string, active bool) error {
	res, err := repo.col.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		return errors.Wrap(err, "setting user active flag")
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo userRepository) find(ctx context.Context, query bson.M) ([]user.User, error) {
	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	var users []user.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}
