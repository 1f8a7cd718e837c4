package event

import (
	"context"
	"time"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// EventService handles business logic for events.
type EventService struct {
	repo   EventRepository
	logger *zap.Logger
}

func NewEventService(repo EventRepository, logger *zap.Logger) *EventService {
	return &EventService{repo: repo, logger: logger}
}

func (s *EventService) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, actor *auth.User, req CreateEventRequest) (*Event, error) {
	if req.Title == "" || req.Date == "" || req.Time == "" || req.Location == "" ||
		req.Description == "" || req.Category == "" {
		return nil, httperr.ErrMissingFields
	}
	if !ValidCategory(req.Category) {
		return nil, httperr.ErrInvalidCategory
	}

	now := time.Now()
	event := &Event{
		ID:          primitive.NewObjectID(),
		User:        actor.ID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Attendees:   []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created", zap.String("title", event.Title), zap.String("by", actor.Email))
	return event, nil
}

// Update edits an event. The router already gates by role; the actor check
// here is deliberate duplication and both must agree.
func (s *EventService) Update(ctx context.Context, actor *auth.User, idHex string, req UpdateEventRequest) (*Event, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httperr.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.ErrNotFound
	}

	if actor == nil || actor.Role != auth.RoleAdmin {
		return nil, httperr.ErrForbidden
	}

	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Date != "" {
		fields["date"] = req.Date
	}
	if req.Time != "" {
		fields["time"] = req.Time
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Category != "" {
		if !ValidCategory(req.Category) {
			return nil, httperr.ErrInvalidCategory
		}
		fields["category"] = req.Category
	}
	if req.ImageURL != "" {
		fields["image_url"] = req.ImageURL
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, httperr.ErrNotFound
	}
	return updated, nil
}

// Delete removes an event, re-checking the actor's role like Update.
func (s *EventService) Delete(ctx context.Context, actor *auth.User, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return httperr.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return httperr.ErrNotFound
	}

	if actor == nil || actor.Role != auth.RoleAdmin {
		return httperr.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrNotFound
	}

	s.logger.Info("event deleted", zap.String("id", idHex), zap.String("by", actor.Email))
	return nil
}

// RegisterAttendee adds the actor to the attendee set. Registration is
// idempotent in effect: the second attempt fails with ALREADY_REGISTERED and
// the set keeps exactly one entry for the user.
func (s *EventService) RegisterAttendee(ctx context.Context, actor *auth.User, idHex string) (*Event, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httperr.ErrNotFound
	}

	added, err := s.repo.AddAttendee(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !added {
		// Either the event does not exist or the user is already on it.
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, httperr.ErrNotFound
		}
		return nil, httperr.ErrAlreadyRegistered
	}

	return s.repo.FindByID(ctx, id)
}
