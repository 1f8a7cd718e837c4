package announcement

import (
	"context"
	"time"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AnnouncementService handles business logic for announcements.
type AnnouncementService struct {
	repo   AnnouncementRepository
	logger *zap.Logger
}

func NewAnnouncementService(repo AnnouncementRepository, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) List(ctx context.Context) ([]Announcement, error) {
	announcements, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []Announcement{}
	}
	return announcements, nil
}

func (s *AnnouncementService) Create(ctx context.Context, actor *auth.User, req CreateAnnouncementRequest) (*Announcement, error) {
	if req.Title == "" || req.Message == "" {
		return nil, httperr.ErrMissingFields
	}

	audience := req.Audience
	if audience == "" {
		audience = "All Students"
	}

	now := time.Now()
	announcement := &Announcement{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Message:   req.Message,
		Urgent:    req.Urgent,
		Audience:  audience,
		Admin:     actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info("announcement created", zap.String("title", announcement.Title), zap.Bool("urgent", announcement.Urgent))
	return announcement, nil
}

func (s *AnnouncementService) Update(ctx context.Context, idHex string, req UpdateAnnouncementRequest) (*Announcement, error) {
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

	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Message != "" {
		fields["message"] = req.Message
	}
	if req.Urgent != nil {
		fields["urgent"] = *req.Urgent
	}
	if req.Audience != "" {
		fields["audience"] = req.Audience
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

func (s *AnnouncementService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return httperr.ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrNotFound
	}
	return nil
}
