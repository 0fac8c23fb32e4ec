package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/inspection"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InspectionHandler interface {
		CreateInspection(c *fiber.Ctx) error
		GetInspections(c *fiber.Ctx) error
		GetInspection(c *fiber.Ctx) error
		UpdateInspection(c *fiber.Ctx) error
		CancelInspection(c *fiber.Ctx) error
		DeleteInspection(c *fiber.Ctx) error
		GetReport(c *fiber.Ctx) error
		GetShare(c *fiber.Ctx) error
		CreateShare(c *fiber.Ctx) error
		RevokeShare(c *fiber.Ctx) error
		GetSharedReport(c *fiber.Ctx) error
		EmailShareLink(c *fiber.Ctx) error
	}

	inspectionHandler struct {
		inspectionService inspection.InspectionService
		validator         *validator.Validate
	}
)

func NewInspectionHandler(inspectionService inspection.InspectionService, validator *validator.Validate) InspectionHandler {
	return &inspectionHandler{
		inspectionService: inspectionService,
		validator:         validator,
	}
}

func inspectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInspectionNotFound), errors.Is(err, domain.ErrShareTokenNotFound),
		errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrPhotoNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedInspection):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *inspectionHandler) CreateInspection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateInspectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInspection, err)
	}

	res, err := h.inspectionService.CreateInspection(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedCreateInspection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInspection)
}

func (h *inspectionHandler) GetInspections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	inspections, count, err := h.inspectionService.GetInspections(c.Context(), userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInspections, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"inspections": inspections,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetInspections)
}

func (h *inspectionHandler) GetInspection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.inspectionService.GetInspectionByID(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetInspection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInspection)
}

func (h *inspectionHandler) UpdateInspection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	req := new(domain.UpdateInspectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInspection, err)
	}

	if err := h.inspectionService.UpdateInspection(c.Context(), inspectionID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedUpdateInspection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateInspection)
}

func (h *inspectionHandler) CancelInspection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	if err := h.inspectionService.CancelInspection(c.Context(), inspectionID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedCancelInspection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelInspection)
}

func (h *inspectionHandler) DeleteInspection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	if err := h.inspectionService.DeleteInspection(c.Context(), inspectionID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedDeleteInspection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInspection)
}

func (h *inspectionHandler) GetReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.inspectionService.GetReport(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *inspectionHandler) GetShare(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.inspectionService.GetShare(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetShare, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShare)
}

func (h *inspectionHandler) CreateShare(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.inspectionService.CreateShare(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedCreateShare, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateShare)
}

func (h *inspectionHandler) RevokeShare(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	if err := h.inspectionService.RevokeShare(c.Context(), inspectionID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedRevokeShare, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRevokeShare)
}

func (h *inspectionHandler) GetSharedReport(c *fiber.Ctx) error {
	token := c.Params("token")

	res, err := h.inspectionService.GetSharedReport(c.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrShareNotEnabled) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetReport, err)
		}
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *inspectionHandler) EmailShareLink(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	req := new(domain.EmailShareRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailShare, err)
	}

	if err := h.inspectionService.EmailShareLink(c.Context(), inspectionID, userID, *req); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedEmailShare, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailShare)
}
