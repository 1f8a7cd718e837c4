package announcement

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnnouncementRepository defines persistence operations on the
// announcements collection.
type AnnouncementRepository interface {
	List(ctx context.Context) ([]Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error)
	Create(ctx context.Context, announcement *Announcement) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Announcement, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type announcementRepository struct {
	collection *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) AnnouncementRepository {
	return &announcementRepository{collection: db.Collection("announcements")}
}

func (r *announcementRepository) List(ctx context.Context) ([]Announcement, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var announcements []Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error) {
	var announcement Announcement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *Announcement) error {
	_, err := r.collection.InsertOne(ctx, announcement)
	return err
}

func (r *announcementRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Announcement, error) {
	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Announcement
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}
