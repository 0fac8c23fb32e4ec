package billing

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testServerKey = "test-server-key"

// signedPayload builds a notification carrying the signature Midtrans would
// compute for these fields with testServerKey as the merchant key.
func signedPayload(orderID, transactionStatus string, fields map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": transactionStatus,
		"status_code":        "200",
		"gross_amount":       "50000.00",
	}
	for k, v := range fields {
		payload[k] = v
	}

	sum := sha512.Sum512([]byte(orderID + "200" + "50000.00" + testServerKey))
	payload["signature_key"] = hex.EncodeToString(sum[:])
	return payload
}

type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) CreateTransaction(ctx context.Context, transaction *entities.CreditTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockBillingRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.CreditTransaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CreditTransaction), args.Error(1)
}

func (m *MockBillingRepository) UpdateTransaction(ctx context.Context, transaction *entities.CreditTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddAnalysisCredits(ctx context.Context, userID string, credits int) error {
	args := m.Called(ctx, userID, credits)
	return args.Error(0)
}

func (m *MockUserRepository) DebitAnalysisCredits(ctx context.Context, userID string, credits int) error {
	args := m.Called(ctx, userID, credits)
	return args.Error(0)
}

func TestGetCreditPackages(t *testing.T) {
	service := NewBillingService(new(MockBillingRepository), new(MockUserRepository))

	packages := service.GetCreditPackages(context.Background())

	assert.Len(t, packages, 3)
	assert.Equal(t, "starter", packages[0].ID)
	assert.True(t, packages[1].IsPopular)
}

func TestBuyCredits_UnknownPackage(t *testing.T) {
	service := NewBillingService(new(MockBillingRepository), new(MockUserRepository))

	_, err := service.BuyCredits(context.Background(), domain.BuyCreditsRequest{
		PackageID: "mega-deluxe",
		Email:     "user@example.com",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidCreditPackage)
}

func TestHandleNotification_SettlementCreditsUser(t *testing.T) {
	userID := uuid.New()
	transaction := &entities.CreditTransaction{
		ID:      uuid.New(),
		UserID:  userID,
		OrderID: "credits-abc",
		Credits: 60,
		Status:  "Pending",
	}

	billingRepo := new(MockBillingRepository)
	billingRepo.On("GetTransactionByOrderID", mock.Anything, "credits-abc").Return(transaction, nil)
	billingRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tr *entities.CreditTransaction) bool {
		return tr.Status == "Settled"
	})).Return(nil)

	userRepo := new(MockUserRepository)
	userRepo.On("AddAnalysisCredits", mock.Anything, userID.String(), 60).Return(nil)

	service := NewBillingService(billingRepo, userRepo)

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), signedPayload("credits-abc", "settlement", map[string]interface{}{
		"fraud_status": "accept",
		"payment_type": "qris",
	}))

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	billingRepo.AssertExpectations(t)
}

func TestHandleNotification_InvalidSignatureRejected(t *testing.T) {
	billingRepo := new(MockBillingRepository)
	userRepo := new(MockUserRepository)
	service := NewBillingService(billingRepo, userRepo)

	t.Setenv("SERVER_KEY", testServerKey)
	payload := signedPayload("credits-abc", "settlement", map[string]interface{}{
		"fraud_status": "accept",
	})
	payload["signature_key"] = "forged"

	err := service.HandleNotification(context.Background(), payload)

	assert.ErrorIs(t, err, domain.ErrInvalidWebhookSignature)
	// A forged notification never touches the transaction or the balance.
	billingRepo.AssertNotCalled(t, "GetTransactionByOrderID", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "AddAnalysisCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_MissingSignatureRejected(t *testing.T) {
	billingRepo := new(MockBillingRepository)
	service := NewBillingService(billingRepo, new(MockUserRepository))

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), map[string]interface{}{
		"order_id":           "credits-abc",
		"transaction_status": "settlement",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidWebhookSignature)
	billingRepo.AssertNotCalled(t, "GetTransactionByOrderID", mock.Anything, mock.Anything)
}

func TestHandleNotification_RedeliveredSettlementIsIdempotent(t *testing.T) {
	transaction := &entities.CreditTransaction{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		OrderID: "credits-abc",
		Credits: 60,
		Status:  "Settled",
	}

	billingRepo := new(MockBillingRepository)
	billingRepo.On("GetTransactionByOrderID", mock.Anything, "credits-abc").Return(transaction, nil)

	userRepo := new(MockUserRepository)

	service := NewBillingService(billingRepo, userRepo)

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), signedPayload("credits-abc", "settlement", map[string]interface{}{
		"fraud_status": "accept",
	}))

	assert.NoError(t, err)
	// A redelivered settlement never grants credits a second time.
	userRepo.AssertNotCalled(t, "AddAnalysisCredits", mock.Anything, mock.Anything, mock.Anything)
	billingRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestHandleNotification_ChallengeHeldWithoutCredits(t *testing.T) {
	transaction := &entities.CreditTransaction{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		OrderID: "credits-abc",
		Credits: 25,
		Status:  "Pending",
	}

	billingRepo := new(MockBillingRepository)
	billingRepo.On("GetTransactionByOrderID", mock.Anything, "credits-abc").Return(transaction, nil)
	billingRepo.On("UpdateTransaction", mock.Anything, mock.Anything).Return(nil)

	userRepo := new(MockUserRepository)

	service := NewBillingService(billingRepo, userRepo)

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), signedPayload("credits-abc", "capture", map[string]interface{}{
		"fraud_status": "challenge",
	}))

	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "AddAnalysisCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_ExpiredMarksFailed(t *testing.T) {
	transaction := &entities.CreditTransaction{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		OrderID: "credits-abc",
		Credits: 25,
		Status:  "Pending",
	}

	billingRepo := new(MockBillingRepository)
	billingRepo.On("GetTransactionByOrderID", mock.Anything, "credits-abc").Return(transaction, nil)
	billingRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tr *entities.CreditTransaction) bool {
		return tr.Status == "Failed"
	})).Return(nil)

	service := NewBillingService(billingRepo, new(MockUserRepository))

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), signedPayload("credits-abc", "expire", nil))

	assert.NoError(t, err)
	billingRepo.AssertExpectations(t)
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	billingRepo := new(MockBillingRepository)
	billingRepo.On("GetTransactionByOrderID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := NewBillingService(billingRepo, new(MockUserRepository))

	t.Setenv("SERVER_KEY", testServerKey)
	err := service.HandleNotification(context.Background(), signedPayload("credits-missing", "settlement", nil))

	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
