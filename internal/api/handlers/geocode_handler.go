package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/geocode"

	"github.com/gofiber/fiber/v2"
)

type (
	GeocodeHandler interface {
		Autocomplete(c *fiber.Ctx) error
	}

	geocodeHandler struct {
		geocodeService geocode.GeocodeService
	}
)

func NewGeocodeHandler(geocodeService geocode.GeocodeService) GeocodeHandler {
	return &geocodeHandler{geocodeService: geocodeService}
}

func (h *geocodeHandler) Autocomplete(c *fiber.Ctx) error {
	query := c.Query("q")

	res, err := h.geocodeService.Autocomplete(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutocomplete, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAutocomplete)
}
