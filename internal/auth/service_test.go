package auth

import (
	"context"
	"testing"
	"time"

	"CampusPortal/internal/config"
	"CampusPortal/pkg/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByStudentID(ctx context.Context, studentID string) (*User, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	args := m.Called(ctx, id, token, expires)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListStudents(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockUserRepository) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestUserService(repo UserRepository) *UserService {
	tokens := NewTokenService(&config.AppConfig{JWTSecret: "test-secret"})
	// Resend env vars absent: the email service runs in disabled mode.
	authSvc := NewAuthService(&config.EmailService{Config: &config.ResendConfig{}})
	return NewUserService(repo, tokens, authSvc, zap.NewNop())
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:      "Test Student",
		Email:     "a@x.com",
		Password:  "pw",
		StudentID: "S1",
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestUserService(new(MockUserRepository))

	for _, req := range []RegisterRequest{
		{Email: "a@x.com", Password: "pw", StudentID: "S1"},
		{Name: "A", Password: "pw", StudentID: "S1"},
		{Name: "A", Email: "a@x.com", StudentID: "S1"},
		{Name: "A", Email: "a@x.com", Password: "pw"},
	} {
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, httperr.ErrMissingFields)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&User{Email: "a@x.com"}, nil)

	_, err := newTestUserService(repo).Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, httperr.ErrDuplicateEmail)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateStudentID(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil)
	repo.On("FindByStudentID", mock.Anything, "S1").Return(&User{StudentID: "S1"}, nil)

	_, err := newTestUserService(repo).Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, httperr.ErrDuplicateStudent)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterForcesStudentRole(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil)
	repo.On("FindByStudentID", mock.Anything, "S1").Return(nil, nil)

	var created *User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*auth.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*User) }).
		Return(nil)

	resp, err := newTestUserService(repo).Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, RoleStudent, created.Role)
	assert.Equal(t, "General", created.Department)
	assert.Equal(t, "Freshman", created.Year)
	assert.NotEqual(t, "pw", created.Password)
	assert.True(t, CheckPasswordHash("pw", created.Password))
	assert.Equal(t, RoleStudent, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginSuccessAfterRegister(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	user := &User{ID: primitive.NewObjectID(), Email: "a@x.com", Password: hash, StudentID: "S1", Role: RoleStudent}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

	svc := newTestUserService(repo)

	resp, err := svc.Login(context.Background(), Credential{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), Credential{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, httperr.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

	_, err := newTestUserService(repo).Login(context.Background(), Credential{Email: "ghost@x.com", Password: "pw"})
	assert.ErrorIs(t, err, httperr.ErrInvalidCredentials)
}

func TestForgotPasswordStoresRandomToken(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), Email: "a@x.com", StudentID: "S1"}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

	var stored string
	repo.On("SetResetToken", mock.Anything, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { stored = args.Get(2).(string) }).
		Return(nil)

	err := newTestUserService(repo).ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "a@x.com", StudentID: "S1"})
	require.NoError(t, err)

	// The token is a fresh random value, never the user's own identifier.
	assert.Len(t, stored, 64)
	assert.NotEqual(t, user.ID.Hex(), stored)
}

func TestForgotPasswordStudentIDMismatch(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), Email: "a@x.com", StudentID: "S1"}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

	err := newTestUserService(repo).ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "a@x.com", StudentID: "S2"})
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	repo.AssertNotCalled(t, "SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByResetToken", mock.Anything, "bogus").Return(nil, nil)

	err := newTestUserService(repo).ResetPassword(context.Background(), ResetPasswordRequest{Token: "bogus", Password: "new"})
	assert.ErrorIs(t, err, httperr.ErrInvalidToken)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), ResetToken: "tok", ResetTokenExpires: time.Now().Add(-time.Minute)}

	repo := new(MockUserRepository)
	repo.On("FindByResetToken", mock.Anything, "tok").Return(user, nil)

	err := newTestUserService(repo).ResetPassword(context.Background(), ResetPasswordRequest{Token: "tok", Password: "new"})
	assert.ErrorIs(t, err, httperr.ErrInvalidToken)
	repo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPasswordSuccess(t *testing.T) {
	user := &User{ID: primitive.NewObjectID(), ResetToken: "tok", ResetTokenExpires: time.Now().Add(time.Minute)}

	repo := new(MockUserRepository)
	repo.On("FindByResetToken", mock.Anything, "tok").Return(user, nil)

	var newHash string
	repo.On("ResetPassword", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { newHash = args.Get(2).(string) }).
		Return(nil)

	err := newTestUserService(repo).ResetPassword(context.Background(), ResetPasswordRequest{Token: "tok", Password: "new"})
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("new", newHash))
}
