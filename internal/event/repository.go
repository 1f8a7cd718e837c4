package event

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository defines persistence operations on the events collection.
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
	RecentWithCreator(ctx context.Context, limit int64) ([]EventWithCreator, error)
}

type eventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{collection: db.Collection("events")}
}

func (r *eventRepository) List(ctx context.Context) ([]Event, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	var event Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *Event) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *eventRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error) {
	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}

// AddAttendee appends the user to the attendee set only if not already
// present, in one conditional update. The filter and $addToSet together make
// concurrent double-registration impossible.
func (r *eventRepository) AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": eventID, "attendees": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"attendees": userID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// RecentWithCreator returns the newest events joined with their owning
// admin's name for the dashboard feed.
func (r *eventRepository) RecentWithCreator(ctx context.Context, limit int64) ([]EventWithCreator, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "creator"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$creator"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []EventWithCreator
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
