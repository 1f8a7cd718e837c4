package announcement

import (
	"net/http"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/labstack/echo/v4"
)

type AnnouncementHandler struct {
	service *AnnouncementService
}

func NewAnnouncementHandler(service *AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c)
	if actor == nil {
		return httperr.JSON(c, httperr.ErrMissingToken)
	}

	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	announcement, err := h.service.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req UpdateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	announcement, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Announcement removed",
		"id":      c.Param("id"),
	})
}
