package middleware

import (
	"strings"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware runs the authentication half of the request pipeline:
// extract the bearer token, verify it, resolve the user, and attach the
// identity (password hash stripped) to the request context.
type AuthMiddleware struct {
	tokens *auth.TokenService
	users  auth.UserRepository
	logger *zap.Logger
}

func NewAuthMiddleware(tokens *auth.TokenService, users auth.UserRepository, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return httperr.JSON(c, httperr.ErrMissingToken)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			return httperr.JSON(c, httperr.ErrMissingToken)
		}

		id, err := m.tokens.Parse(tokenString)
		if err != nil {
			return httperr.JSON(c, httperr.ErrInvalidToken)
		}

		// A signed id must still resolve to a live account; tokens outlive
		// any account deletion that happened after issuance.
		user, err := m.users.FindByID(c.Request().Context(), id)
		if err != nil {
			m.logger.Error("identity lookup failed", zap.Error(err))
			return httperr.JSON(c, httperr.ErrInternal)
		}
		if user == nil {
			return httperr.JSON(c, httperr.ErrUnknownUser)
		}

		user.Password = ""
		c.Set(auth.ContextKey, user)
		return next(c)
	}
}
