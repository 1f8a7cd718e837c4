package announcement

import (
	"context"
	"testing"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockAnnouncementRepository is a mock implementation of
// AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) List(ctx context.Context) ([]Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Announcement, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func admin() *auth.User {
	return &auth.User{ID: primitive.NewObjectID(), Email: "admin@gmail.com", Role: auth.RoleAdmin}
}

func TestCreateAnnouncementMissingFields(t *testing.T) {
	svc := NewAnnouncementService(new(MockAnnouncementRepository), zap.NewNop())

	_, err := svc.Create(context.Background(), admin(), CreateAnnouncementRequest{Title: "t"})
	assert.ErrorIs(t, err, httperr.ErrMissingFields)

	_, err = svc.Create(context.Background(), admin(), CreateAnnouncementRequest{Message: "m"})
	assert.ErrorIs(t, err, httperr.ErrMissingFields)
}

func TestCreateAnnouncementDefaultsAudience(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*announcement.Announcement")).Return(nil)

	actor := admin()
	got, err := NewAnnouncementService(repo, zap.NewNop()).Create(context.Background(), actor, CreateAnnouncementRequest{
		Title:   "Exam week",
		Message: "Library hours extended",
		Urgent:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "All Students", got.Audience)
	assert.Equal(t, actor.ID, got.Admin)
	assert.True(t, got.Urgent)
}

func TestUpdateAnnouncementNotFound(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	id := primitive.NewObjectID()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := NewAnnouncementService(repo, zap.NewNop()).Update(context.Background(), id.Hex(), UpdateAnnouncementRequest{Title: "x"})
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestUpdateAnnouncementUrgentFlag(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	id := primitive.NewObjectID()
	urgent := false
	repo.On("FindByID", mock.Anything, id).Return(&Announcement{ID: id, Urgent: true}, nil)
	repo.On("Update", mock.Anything, id, bson.M{"urgent": false}).Return(&Announcement{ID: id, Urgent: false}, nil)

	got, err := NewAnnouncementService(repo, zap.NewNop()).Update(context.Background(), id.Hex(), UpdateAnnouncementRequest{Urgent: &urgent})
	require.NoError(t, err)
	assert.False(t, got.Urgent)
}

func TestDeleteAnnouncementNotFound(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	id := primitive.NewObjectID()
	repo.On("Delete", mock.Anything, id).Return(false, nil)

	err := NewAnnouncementService(repo, zap.NewNop()).Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
