package auth

import (
	"context"
	"fmt"
	"time"

	"CampusPortal/internal/config"
	"CampusPortal/pkg/httperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AuthService owns the outbound side of authentication: recovery mail.
type AuthService struct {
	EmailService *config.EmailService
}

func NewAuthService(emailService *config.EmailService) *AuthService {
	return &AuthService{EmailService: emailService}
}

func (a *AuthService) SendResetPasswordEmail(email, token string) error {
	subject := "Password Reset"
	body := fmt.Sprintf("Use the following code to reset your password within %d minutes: %s",
		int(RecoveryTokenTTL.Minutes()), token)
	return a.EmailService.SendEmail(email, subject, body)
}

// UserService implements registration, login and password recovery.
type UserService struct {
	repo        UserRepository
	tokens      *TokenService
	authService *AuthService
	logger      *zap.Logger
}

func NewUserService(repo UserRepository, tokens *TokenService, authService *AuthService, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, authService: authService, logger: logger}
}

// Register creates a student account. The role is always forced to student
// no matter what the caller supplies; admin accounts come from seeding only.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.StudentID == "" {
		return nil, httperr.ErrMissingFields
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrDuplicateEmail
	}

	existing, err = s.repo.FindByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrDuplicateStudent
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	department := req.Department
	if department == "" {
		department = "General"
	}
	year := req.Year
	if year == "" {
		year = "Freshman"
	}

	now := time.Now()
	user := &User{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		StudentID:  req.StudentID,
		Role:       RoleStudent,
		Department: department,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("email", user.Email), zap.String("studentId", user.StudentID))
	return &AuthResponse{UserSummary: user.Summary(), Token: token}, nil
}

// Login checks the credentials and issues a bearer token. A missing user and
// a failed hash comparison both come back as the same error so callers
// cannot probe which accounts exist.
func (s *UserService) Login(ctx context.Context, cred Credential) (*AuthResponse, error) {
	if cred.Email == "" || cred.Password == "" {
		return nil, httperr.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPasswordHash(cred.Password, user.Password) {
		return nil, httperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{UserSummary: user.Summary(), Token: token}, nil
}

// ForgotPassword starts recovery: both email and student ID must match one
// account. The token is random, stored with a 15-minute expiry, and
// delivered by email only.
func (s *UserService) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	if req.Email == "" || req.StudentID == "" {
		return httperr.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil || user.StudentID != req.StudentID {
		return httperr.ErrNotFound
	}

	token, err := NewRecoveryToken()
	if err != nil {
		return err
	}
	if err := s.repo.SetResetToken(ctx, user.ID, token, time.Now().Add(RecoveryTokenTTL)); err != nil {
		return err
	}

	if err := s.authService.SendResetPasswordEmail(user.Email, token); err != nil {
		s.logger.Error("failed to send recovery email", zap.String("email", user.Email), zap.Error(err))
		return httperr.ErrInternal
	}
	return nil
}

// ResetPassword completes recovery. The token is single use: a successful
// reset clears it, and expired tokens are rejected.
func (s *UserService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Token == "" || req.Password == "" {
		return httperr.ErrMissingFields
	}

	user, err := s.repo.FindByResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if user == nil || time.Now().After(user.ResetTokenExpires) {
		return httperr.ErrInvalidToken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	if err := s.repo.ResetPassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info("password reset completed", zap.String("email", user.Email))
	return nil
}
