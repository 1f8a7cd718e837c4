package inquiry

import (
	"context"
	"time"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// InquiryService handles business logic for student inquiries.
type InquiryService struct {
	repo   InquiryRepository
	logger *zap.Logger
}

func NewInquiryService(repo InquiryRepository, logger *zap.Logger) *InquiryService {
	return &InquiryService{repo: repo, logger: logger}
}

func (s *InquiryService) List(ctx context.Context) ([]InquiryWithUser, error) {
	inquiries, err := s.repo.ListWithUser(ctx)
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []InquiryWithUser{}
	}
	return inquiries, nil
}

func (s *InquiryService) Create(ctx context.Context, actor *auth.User, req CreateInquiryRequest) (*Inquiry, error) {
	if req.Subject == "" || req.Message == "" {
		return nil, httperr.ErrMissingFields
	}

	now := time.Now()
	inquiry := &Inquiry{
		ID:        primitive.NewObjectID(),
		User:      actor.ID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logger.Info("inquiry submitted", zap.String("subject", inquiry.Subject), zap.String("by", actor.Email))
	return inquiry, nil
}

// Resolve transitions the inquiry from PENDING to RESOLVED.
func (s *InquiryService) Resolve(ctx context.Context, idHex string) (*Inquiry, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httperr.ErrNotFound
	}

	updated, err := s.repo.SetStatus(ctx, id, StatusResolved)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, httperr.ErrNotFound
	}
	return updated, nil
}

func (s *InquiryService) Delete(ctx context.Context, idHex string) error {
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
