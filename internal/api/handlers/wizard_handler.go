package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/wizard"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WizardHandler interface {
		GetState(c *fiber.Ctx) error
		SaveRoom(c *fiber.Ctx) error
	}

	wizardHandler struct {
		wizardService wizard.WizardService
		validator     *validator.Validate
	}
)

func NewWizardHandler(wizardService wizard.WizardService, validator *validator.Validate) WizardHandler {
	return &wizardHandler{
		wizardService: wizardService,
		validator:     validator,
	}
}

func (h *wizardHandler) GetState(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.wizardService.GetState(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetWizardState, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWizardState)
}

func (h *wizardHandler) SaveRoom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	roomID := c.Params("roomId")
	req := new(domain.SaveRoomRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRoom, err)
	}

	res, err := h.wizardService.SaveRoom(c.Context(), inspectionID, roomID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedSaveRoom, err)
	}

	message := domain.MessageSuccessSaveRoom
	if res.Completed {
		message = domain.MessageInspectionCompleted
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}
