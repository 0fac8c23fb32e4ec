package entities

import (
	"time"

	"github.com/google/uuid"
)

type Inspection struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Address        string    `json:"address"`
	InspectionType string    `json:"inspection_type"` // "entry", "exit", "routine"
	OwnerName      string    `json:"owner_name"`
	TenantName     string    `json:"tenant_name,omitempty"`
	InspectionDate time.Time `json:"inspection_date"`
	Status         string    `json:"status"` // "pending", "in_progress", "completed", "cancelled"
	ShareToken     *string   `gorm:"uniqueIndex" json:"share_token,omitempty"`
	ShareEnabled   bool      `json:"share_enabled"`

	User  *User   `gorm:"foreignKey:UserID"`
	Rooms []*Room `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Room struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InspectionID uuid.UUID  `json:"inspection_id"`
	RoomName     string     `json:"room_name"`
	RoomType     string     `json:"room_type"` // "standard", "custom"
	IsSelected   bool       `json:"is_selected"`
	IsCompleted  bool       `json:"is_completed"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Comments     string     `gorm:"type:text" json:"comments,omitempty"`
	AIAnalysis   string     `gorm:"type:text" json:"ai_analysis,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	Inspection *Inspection `gorm:"foreignKey:InspectionID"`
	Photos     []*Photo    `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Timestamp
}
