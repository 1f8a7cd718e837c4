package event

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"CampusPortal/internal/auth"
	"CampusPortal/internal/config"
	"CampusPortal/pkg/httperr"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EventHandler struct {
	service *EventService
	cfg     *config.AppConfig
	logger  *zap.Logger
}

func NewEventHandler(service *EventService, cfg *config.AppConfig, logger *zap.Logger) *EventHandler {
	return &EventHandler{service: service, cfg: cfg, logger: logger}
}

func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c)
	if actor == nil {
		return httperr.JSON(c, httperr.ErrMissingToken)
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	event, err := h.service.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c echo.Context) error {
	actor := auth.IdentityFromContext(c)

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	event, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c echo.Context) error {
	actor := auth.IdentityFromContext(c)

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
}

func (h *EventHandler) Register(c echo.Context) error {
	actor := auth.IdentityFromContext(c)
	if actor == nil {
		return httperr.JSON(c, httperr.ErrMissingToken)
	}

	event, err := h.service.RegisterAttendee(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Registered successfully",
		"event":   event,
	})
}

// Upload stores a single multipart file field named "image" under the
// uploads directory and returns its public relative URL.
func (h *EventHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return httperr.JSON(c, httperr.ErrNoFile)
	}

	src, err := file.Open()
	if err != nil {
		return httperr.JSON(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return httperr.JSON(c, err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.UploadDir, name))
	if err != nil {
		return httperr.JSON(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return httperr.JSON(c, err)
	}

	h.logger.Info("file uploaded", zap.String("name", name))
	return c.JSON(http.StatusOK, map[string]string{"imageUrl": "/uploads/" + name})
}
