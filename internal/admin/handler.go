package admin

import (
	"net/http"

	"CampusPortal/pkg/httperr"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	service *AdminService
}

func NewAdminHandler(service *AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Students(c echo.Context) error {
	students, err := h.service.Students(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, students)
}
