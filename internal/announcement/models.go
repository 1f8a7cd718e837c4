package announcement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is an admin-authored notice shown to an audience label.
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Urgent    bool               `bson:"urgent" json:"urgent"`
	Audience  string             `bson:"audience" json:"audience"`
	Admin     primitive.ObjectID `bson:"admin" json:"admin"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Urgent   bool   `json:"urgent"`
	Audience string `json:"audience"`
}

// UpdateAnnouncementRequest is a partial update; empty fields stay as-is.
// Urgent is a pointer so "set to false" and "not supplied" are distinct.
type UpdateAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Urgent   *bool  `json:"urgent"`
	Audience string `json:"audience"`
}
