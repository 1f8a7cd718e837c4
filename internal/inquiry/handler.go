package inquiry

import (
	"net/http"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/labstack/echo/v4"
)

type InquiryHandler struct {
	service *InquiryService
}

func NewInquiryHandler(service *InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.service.List(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, inquiries)
}

func (h *InquiryHandler) Create(c echo.Context) error {
	actor := auth.IdentityFromContext(c)
	if actor == nil {
		return httperr.JSON(c, httperr.ErrMissingToken)
	}

	var req CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return httperr.JSON(c, httperr.ErrBadRequest)
	}

	inquiry, err := h.service.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, inquiry)
}

func (h *InquiryHandler) Resolve(c echo.Context) error {
	inquiry, err := h.service.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, inquiry)
}

func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry removed"})
}
