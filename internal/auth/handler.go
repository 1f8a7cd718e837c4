package auth

import (
	"net/http"

	"CampusPortal/pkg/httperr"

	"github.com/labstack/echo/v4"
)

// ContextKey is where the authenticate middleware stores the resolved user.
const ContextKey = "user"

// IdentityFromContext returns the authenticated user attached by the
// middleware, or nil when the request never passed authentication.
func IdentityFromContext(c echo.Context) *User {
	user, _ := c.Get(ContextKey).(*User)
	return user
}

type AuthHandler struct {
	service *UserService
}

func NewAuthHandler(service *UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	resp, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	resp, err := h.service.Login(c.Request().Context(), cred)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Me returns the identity attached by the authenticate middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user := IdentityFromContext(c)
	if user == nil {
		return httperr.JSON(c, httperr.ErrMissingToken)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	if err := h.service.ResetPassword(c.Request().Context(), req); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password successfully reset"})
}
