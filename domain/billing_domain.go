package domain

import "errors"

var (
	MessageSuccessGetCreditPackages = "credit packages retrieved successfully"
	MessageSuccessBuyCredits        = "credit purchase created successfully"
	MessageSuccessWebhook           = "notification processed successfully"

	MessageFailedGetCreditPackages = "failed to retrieve credit packages"
	MessageFailedBuyCredits        = "failed to create credit purchase"
	MessageFailedWebhook           = "failed to process notification"

	ErrInvalidCreditPackage    = errors.New("invalid credit package")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrPaymentFailed           = errors.New("payment processing failed")
	ErrInvalidWebhookSignature = errors.New("invalid notification signature")
)

type (
	CreditPackage struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Credits     int    `json:"credits"`
		Price       int64  `json:"price"`
		Currency    string `json:"currency"`
		Description string `json:"description,omitempty"`
		IsPopular   bool   `json:"is_popular"`
	}

	BuyCreditsRequest struct {
		PackageID string `json:"package_id" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	BuyCreditsResponse struct {
		TransactionID string `json:"transaction_id"`
		OrderID       string `json:"order_id"`
		InvoiceURL    string `json:"invoice_url"`
	}
)
