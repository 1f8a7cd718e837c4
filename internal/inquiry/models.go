package inquiry

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
)

// Inquiry is a student question tracked until an admin resolves it. The only
// legal status transition is PENDING to RESOLVED.
type Inquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SubmitterRef is the submitting student's public contact info, joined in
// when admins list inquiries.
type SubmitterRef struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

type InquiryWithUser struct {
	Inquiry   `bson:",inline"`
	Submitter *SubmitterRef `bson:"submitter,omitempty" json:"submitter,omitempty"`
}

type CreateInquiryRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
