package entities

import (
	"github.com/google/uuid"
)

type CreditTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	PackageID   string    `json:"package_id"`
	Credits     int       `json:"credits"`
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `json:"status"` // "Pending", "Settled", "Failed"
	PaymentType string    `json:"payment_type,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
