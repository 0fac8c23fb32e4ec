package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/room"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RoomHandler interface {
		GetRooms(c *fiber.Ctx) error
		GetStandardCatalog(c *fiber.Ctx) error
		ToggleStandardRoom(c *fiber.Ctx) error
		AddCustomRoom(c *fiber.Ctx) error
		RemoveRoom(c *fiber.Ctx) error
	}

	roomHandler struct {
		roomService room.RoomService
		validator   *validator.Validate
	}
)

func NewRoomHandler(roomService room.RoomService, validator *validator.Validate) RoomHandler {
	return &roomHandler{
		roomService: roomService,
		validator:   validator,
	}
}

func (h *roomHandler) GetRooms(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")

	res, err := h.roomService.GetRooms(c.Context(), inspectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetRooms, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRooms)
}

func (h *roomHandler) GetStandardCatalog(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.StandardRoomCatalog, fiber.StatusOK, domain.MessageSuccessGetRooms)
}

func (h *roomHandler) ToggleStandardRoom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	req := new(domain.ToggleRoomRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleRoom, err)
	}

	res, err := h.roomService.ToggleStandardRoom(c.Context(), inspectionID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedToggleRoom, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleRoom)
}

func (h *roomHandler) AddCustomRoom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	req := new(domain.AddCustomRoomRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCustomRoom, err)
	}

	res, err := h.roomService.AddCustomRoom(c.Context(), inspectionID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomAlreadyAdded) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageRoomAlreadyAdded, err)
		}
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedAddCustomRoom, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCustomRoom)
}

func (h *roomHandler) RemoveRoom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	roomID := c.Params("roomId")

	if err := h.roomService.RemoveRoom(c.Context(), inspectionID, roomID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedRemoveRoom, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveRoom)
}
