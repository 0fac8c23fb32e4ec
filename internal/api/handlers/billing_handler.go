package handlers

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/api/presenters"
	"PropInspect-Backend/pkg/billing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BillingHandler interface {
		GetCreditPackages(c *fiber.Ctx) error
		BuyCredits(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	billingHandler struct {
		billingService billing.BillingService
		validator      *validator.Validate
	}
)

func NewBillingHandler(billingService billing.BillingService, validator *validator.Validate) BillingHandler {
	return &billingHandler{
		billingService: billingService,
		validator:      validator,
	}
}

func (h *billingHandler) GetCreditPackages(c *fiber.Ctx) error {
	packages := h.billingService.GetCreditPackages(c.Context())
	return presenters.SuccessResponse(c, packages, fiber.StatusOK, domain.MessageSuccessGetCreditPackages)
}

func (h *billingHandler) BuyCredits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BuyCreditsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuyCredits, err)
	}

	res, err := h.billingService.BuyCredits(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuyCredits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessBuyCredits)
}

func (h *billingHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.billingService.HandleNotification(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
