package auth

import (
	"context"
	"strings"
	"time"

	"CampusPortal/pkg/httperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines persistence operations on the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByStudentID(ctx context.Context, studentID string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
	ListStudents(ctx context.Context) ([]User, error)
	CountStudents(ctx context.Context) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The unique indexes are the backstop behind the service-level
			// duplicate checks; tell the two violations apart by index name.
			if strings.Contains(err.Error(), "student_id") {
				return httperr.ErrDuplicateStudent
			}
			return httperr.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) FindByStudentID(ctx context.Context, studentID string) (*User, error) {
	return r.findOne(ctx, bson.M{"student_id": studentID})
}

func (r *userRepository) FindByResetToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"role": role, "updated_at": time.Now()},
	})
	return err
}

func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"reset_token": token, "reset_token_expires": expires, "updated_at": time.Now()},
	})
	return err
}

// ResetPassword stores the new hash and clears the recovery token so it
// cannot be replayed.
func (r *userRepository) ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set":   bson.M{"password": passwordHash, "updated_at": time.Now()},
		"$unset": bson.M{"reset_token": "", "reset_token_expires": ""},
	})
	return err
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"reset_token": bson.M{"$exists": true}, "reset_token_expires": bson.M{"$lt": time.Now()}},
		bson.M{"$unset": bson.M{"reset_token": "", "reset_token_expires": ""}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *userRepository) ListStudents(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"role": RoleStudent}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []User
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": RoleStudent})
}
