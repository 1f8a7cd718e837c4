// Package httperr defines the portal's error taxonomy: every domain failure
// maps to a stable machine-readable code alongside the human message, so
// clients are not stuck parsing message strings.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is a domain failure carrying its HTTP status and stable code.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error; useful for one-off failures that need no sentinel.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	// Validation failures (400).
	ErrMissingFields     = New(http.StatusBadRequest, "MISSING_FIELDS", "Please add all required fields")
	ErrDuplicateEmail    = New(http.StatusBadRequest, "DUPLICATE_EMAIL", "User with this email already exists")
	ErrDuplicateStudent  = New(http.StatusBadRequest, "DUPLICATE_STUDENT_ID", "A user with this ID number already exists")
	ErrInvalidCategory   = New(http.StatusBadRequest, "INVALID_CATEGORY", "Category must be Academic, Social, Sports or Other")
	ErrAlreadyRegistered = New(http.StatusBadRequest, "ALREADY_REGISTERED", "User already registered for this event")
	ErrNoFile            = New(http.StatusBadRequest, "NO_FILE", "No file uploaded")
	ErrBadRequest        = New(http.StatusBadRequest, "BAD_REQUEST", "Invalid request")

	// Authentication failures (401).
	ErrMissingToken       = New(http.StatusUnauthorized, "MISSING_TOKEN", "Not authorized, no token")
	ErrInvalidToken       = New(http.StatusUnauthorized, "INVALID_TOKEN", "Not authorized, token failed")
	ErrUnknownUser        = New(http.StatusUnauthorized, "UNKNOWN_USER", "Not authorized, user no longer exists")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")

	// Authorization failure (403).
	ErrForbidden = New(http.StatusForbidden, "FORBIDDEN", "Not authorized for this action")

	// Missing resource (404).
	ErrNotFound = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")

	// Everything else (500).
	ErrInternal = New(http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
)

// Response is the JSON body returned for every failure.
type Response struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// JSON converts err into the portal's error response. Unrecognized errors
// collapse into a 500 so internals never leak to clients.
func JSON(c echo.Context, err error) error {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		domainErr = ErrInternal
	}
	return c.JSON(domainErr.Status, Response{Message: domainErr.Message, Code: domainErr.Code})
}
