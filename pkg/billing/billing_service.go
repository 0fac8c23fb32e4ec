package billing

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"
	"PropInspect-Backend/internal/utils"
	"PropInspect-Backend/pkg/user"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

var creditPackages = []domain.CreditPackage{
	{ID: "starter", Name: "Starter", Credits: 25, Price: 25000, Currency: "IDR", Description: "5 photo analyses"},
	{ID: "standard", Name: "Standard", Credits: 60, Price: 50000, Currency: "IDR", Description: "12 photo analyses", IsPopular: true},
	{ID: "agency", Name: "Agency", Credits: 150, Price: 100000, Currency: "IDR", Description: "30 photo analyses"},
}

type (
	BillingService interface {
		GetCreditPackages(ctx context.Context) []domain.CreditPackage
		BuyCredits(ctx context.Context, req domain.BuyCreditsRequest, userID string) (domain.BuyCreditsResponse, error)
		HandleNotification(ctx context.Context, payload map[string]interface{}) error
	}

	billingService struct {
		billingRepository BillingRepository
		userRepository    user.UserRepository
	}
)

func NewBillingService(billingRepository BillingRepository, userRepository user.UserRepository) BillingService {
	return &billingService{
		billingRepository: billingRepository,
		userRepository:    userRepository,
	}
}

func (s *billingService) GetCreditPackages(ctx context.Context) []domain.CreditPackage {
	return creditPackages
}

func findPackage(id string) (domain.CreditPackage, bool) {
	for _, pkg := range creditPackages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return domain.CreditPackage{}, false
}

func newSnapClient() snap.Client {
	env := midtrans.Sandbox
	if utils.GetConfig("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return client
}

func (s *billingService) BuyCredits(ctx context.Context, req domain.BuyCreditsRequest, userID string) (domain.BuyCreditsResponse, error) {
	pkg, ok := findPackage(req.PackageID)
	if !ok {
		return domain.BuyCreditsResponse{}, domain.ErrInvalidCreditPackage
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BuyCreditsResponse{}, domain.ErrParseUUID
	}

	transaction := &entities.CreditTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		OrderID:     fmt.Sprintf("credits-%s", uuid.New().String()),
		PackageID:   pkg.ID,
		Credits:     pkg.Credits,
		GrossAmount: pkg.Price,
		Status:      "Pending",
	}

	snapClient := newSnapClient()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transaction.OrderID,
			GrossAmt: pkg.Price,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    pkg.ID,
				Name:  fmt.Sprintf("%s credit package", pkg.Name),
				Price: pkg.Price,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.BuyCreditsResponse{}, domain.ErrPaymentFailed
	}

	if err := s.billingRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.BuyCreditsResponse{}, err
	}

	return domain.BuyCreditsResponse{
		TransactionID: transaction.ID.String(),
		OrderID:       transaction.OrderID,
		InvoiceURL:    snapResp.RedirectURL,
	}, nil
}

// validNotificationSignature checks the Midtrans signature_key, the SHA-512
// of order_id + status_code + gross_amount + the merchant server key.
func validNotificationSignature(payload map[string]interface{}) bool {
	orderID, _ := payload["order_id"].(string)
	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signatureKey, _ := payload["signature_key"].(string)

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + utils.GetConfig("SERVER_KEY")))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}

func (s *billingService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	if !validNotificationSignature(payload) {
		return domain.ErrInvalidWebhookSignature
	}

	orderID, _ := payload["order_id"].(string)
	transactionStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)
	paymentType, _ := payload["payment_type"].(string)

	transaction, err := s.billingRepository.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	// Settled notifications may be redelivered; crediting happens once.
	if transaction.Status == "Settled" {
		return nil
	}

	transaction.PaymentType = paymentType

	switch transactionStatus {
	case "capture", "settlement":
		if fraudStatus == "challenge" {
			return s.billingRepository.UpdateTransaction(ctx, transaction)
		}
		transaction.Status = "Settled"
		if err := s.billingRepository.UpdateTransaction(ctx, transaction); err != nil {
			return err
		}
		return s.userRepository.AddAnalysisCredits(ctx, transaction.UserID.String(), transaction.Credits)
	case "deny", "cancel", "expire", "failure":
		transaction.Status = "Failed"
		return s.billingRepository.UpdateTransaction(ctx, transaction)
	default:
		return s.billingRepository.UpdateTransaction(ctx, transaction)
	}
}
