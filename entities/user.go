package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	Name            string    `json:"name"`
	Role            string    `json:"role"` // "user"
	IsVerified      bool      `json:"is_verified"`
	AnalysisCredits int       `json:"analysis_credits"`

	Inspections []*Inspection `gorm:"foreignKey:UserID"`
	Timestamp
}
