package inquiry

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InquiryRepository defines persistence operations on the inquiries
// collection.
type InquiryRepository interface {
	ListWithUser(ctx context.Context) ([]InquiryWithUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Inquiry, error)
	Create(ctx context.Context, inquiry *Inquiry) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*Inquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	CountPending(ctx context.Context) (int64, error)
	RecentWithUser(ctx context.Context, limit int64) ([]InquiryWithUser, error)
}

type inquiryRepository struct {
	collection *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) InquiryRepository {
	return &inquiryRepository{collection: db.Collection("inquiries")}
}

// lookupPipeline joins each inquiry with its submitting user, newest first.
// A zero limit means no limit stage.
func lookupPipeline(limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "submitter"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$submitter"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
	return pipeline
}

func (r *inquiryRepository) aggregateWithUser(ctx context.Context, limit int64) ([]InquiryWithUser, error) {
	cursor, err := r.collection.Aggregate(ctx, lookupPipeline(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []InquiryWithUser
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) ListWithUser(ctx context.Context) ([]InquiryWithUser, error) {
	return r.aggregateWithUser(ctx, 0)
}

func (r *inquiryRepository) RecentWithUser(ctx context.Context, limit int64) ([]InquiryWithUser, error) {
	return r.aggregateWithUser(ctx, limit)
}

func (r *inquiryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Inquiry, error) {
	var inquiry Inquiry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *Inquiry) error {
	_, err := r.collection.InsertOne(ctx, inquiry)
	return err
}

func (r *inquiryRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Inquiry
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *inquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}

func (r *inquiryRepository) CountPending(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": StatusPending})
}
