package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/analysis"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		AnalyzeInspectionPhoto(c *fiber.Ctx) error
		AnalyzeInspectionPhotoUsage(c *fiber.Ctx) error
		AnalyzeRoomPhoto(c *fiber.Ctx) error
		ReviewAnalysis(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func analysisErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrAnalysisRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrAnalysisKeyMissing), errors.Is(err, domain.ErrAnalysisUpstreamFailed):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// AnalyzeInspectionPhoto serves the documented analysis contract: the reply
// body is the bare result object, not the envelope the /api/v1 routes use.
func (h *analysisHandler) AnalyzeInspectionPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzePhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.analysisService.AnalyzePhoto(c.Context(), *req, userID)
	if err != nil {
		return c.Status(analysisErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *analysisHandler) AnalyzeInspectionPhotoUsage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"endpoint": "/api/analyze-inspection-photo",
		"method":   "POST",
		"body": fiber.Map{
			"photoUrl":       "HTTP(S) URL of the photo to analyze",
			"inspectionType": "one of: entry, exit, routine",
			"roomName":       "name of the room in the photo",
		},
		"response": fiber.Map{
			"description":       "condition and cleanliness description",
			"cleanliness_score": "integer from 1 to 10",
			"metadata":          "inspection_type, room_name, tokens_used, model_used, analyzed_at",
		},
		"errors": fiber.Map{
			"400": "missing or invalid fields, malformed photo URL",
			"401": "missing or invalid authentication token",
			"429": "upstream rate limit exceeded",
			"500": "missing upstream credentials or upstream failure",
		},
	})
}

func (h *analysisHandler) AnalyzeRoomPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeRoomRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.analysisService.AnalyzeRoom(c.Context(), *req, userID)
	if err != nil {
		return c.Status(analysisErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *analysisHandler) ReviewAnalysis(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ReviewAnalysisRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.RoomID = c.Params("roomId")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewAnalysis, err)
	}

	res, err := h.analysisService.ReviewAnalysis(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedReviewAnalysis, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReviewAnalysis)
}
