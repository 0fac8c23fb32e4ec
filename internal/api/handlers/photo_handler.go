package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/photo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PhotoHandler interface {
		UploadPhoto(c *fiber.Ctx) error
		GetPhotos(c *fiber.Ctx) error
		SetPrimaryPhoto(c *fiber.Ctx) error
		DeletePhoto(c *fiber.Ctx) error
	}

	photoHandler struct {
		photoService photo.PhotoService
		validator    *validator.Validate
	}
)

func NewPhotoHandler(photoService photo.PhotoService, validator *validator.Validate) PhotoHandler {
	return &photoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

func (h *photoHandler) UploadPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	req := new(domain.UploadPhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.RoomID = c.Params("roomId")

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res, err := h.photoService.UploadPhoto(c.Context(), inspectionID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}

func (h *photoHandler) GetPhotos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	roomID := c.Params("roomId")

	res, err := h.photoService.GetPhotos(c.Context(), inspectionID, roomID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedGetPhotos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPhotos)
}

func (h *photoHandler) SetPrimaryPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	photoID := c.Params("photoId")

	if err := h.photoService.SetPrimaryPhoto(c.Context(), inspectionID, photoID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedSetPrimary, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetPrimary)
}

func (h *photoHandler) DeletePhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	inspectionID := c.Params("id")
	photoID := c.Params("photoId")

	if err := h.photoService.DeletePhoto(c.Context(), inspectionID, photoID, userID); err != nil {
		return presenters.ErrorResponse(c, inspectionErrorStatus(err), domain.MessageFailedDeletePhoto, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePhoto)
}
