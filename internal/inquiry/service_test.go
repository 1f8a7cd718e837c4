package inquiry

import (
	"context"
	"testing"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockInquiryRepository is a mock implementation of InquiryRepository.
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) ListWithUser(ctx context.Context) ([]InquiryWithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]InquiryWithUser), args.Error(1)
}

func (m *MockInquiryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*Inquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInquiryRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInquiryRepository) RecentWithUser(ctx context.Context, limit int64) ([]InquiryWithUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]InquiryWithUser), args.Error(1)
}

func student() *auth.User {
	return &auth.User{ID: primitive.NewObjectID(), Email: "a@x.com", Role: auth.RoleStudent}
}

func TestCreateInquiryMissingFields(t *testing.T) {
	svc := NewInquiryService(new(MockInquiryRepository), zap.NewNop())

	_, err := svc.Create(context.Background(), student(), CreateInquiryRequest{Subject: "s"})
	assert.ErrorIs(t, err, httperr.ErrMissingFields)
}

func TestCreateInquiryStartsPending(t *testing.T) {
	repo := new(MockInquiryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*inquiry.Inquiry")).Return(nil)

	actor := student()
	got, err := NewInquiryService(repo, zap.NewNop()).Create(context.Background(), actor, CreateInquiryRequest{
		Subject: "Dorm wifi",
		Message: "Wifi is down in building C",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, actor.ID, got.User)
}

func TestResolveInquiry(t *testing.T) {
	repo := new(MockInquiryRepository)
	id := primitive.NewObjectID()
	repo.On("SetStatus", mock.Anything, id, StatusResolved).Return(&Inquiry{ID: id, Status: StatusResolved}, nil)

	got, err := NewInquiryService(repo, zap.NewNop()).Resolve(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, got.Status)
}

func TestResolveUnknownInquiry(t *testing.T) {
	repo := new(MockInquiryRepository)
	id := primitive.NewObjectID()
	repo.On("SetStatus", mock.Anything, id, StatusResolved).Return(nil, nil)

	_, err := NewInquiryService(repo, zap.NewNop()).Resolve(context.Background(), id.Hex())
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestResolveRejectsBadID(t *testing.T) {
	repo := new(MockInquiryRepository)

	_, err := NewInquiryService(repo, zap.NewNop()).Resolve(context.Background(), "not-hex")
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUnknownInquiry(t *testing.T) {
	repo := new(MockInquiryRepository)
	id := primitive.NewObjectID()
	repo.On("Delete", mock.Anything, id).Return(false, nil)

	err := NewInquiryService(repo, zap.NewNop()).Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
