package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories an event may carry.
const (
	CategoryAcademic = "Academic"
	CategorySocial   = "Social"
	CategorySports   = "Sports"
	CategoryOther    = "Other"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryAcademic, CategorySocial, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Event is a campus event owned by an admin. Attendees is a set: a user may
// appear at most once, enforced by an atomic conditional update.
type Event struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID   `bson:"user" json:"user"`
	Title       string               `bson:"title" json:"title"`
	Date        string               `bson:"date" json:"date"`
	Time        string               `bson:"time" json:"time"`
	Location    string               `bson:"location" json:"location"`
	Description string               `bson:"description" json:"description"`
	Category    string               `bson:"category" json:"category"`
	ImageURL    string               `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// CreatorRef is the event owner's name pulled in by the dashboard lookup.
type CreatorRef struct {
	Name string `bson:"name" json:"name"`
}

// EventWithCreator is an event joined with its owning admin, used by the
// admin activity feed.
type EventWithCreator struct {
	Event   `bson:",inline"`
	Creator *CreatorRef `bson:"creator,omitempty" json:"creator,omitempty"`
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateEventRequest carries a partial update; empty fields are left alone.
type UpdateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}
