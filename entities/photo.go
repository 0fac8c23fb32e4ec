package entities

import (
	"github.com/google/uuid"
)

type Photo struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InspectionID     uuid.UUID `json:"inspection_id"`
	RoomID           uuid.UUID `json:"room_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	StoragePath      string    `json:"storage_path"`
	PublicURL        string    `json:"public_url"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	Width            *int      `json:"width,omitempty"`
	Height           *int      `json:"height,omitempty"`
	CaptureMethod    string    `json:"capture_method"` // "camera", "upload"
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	IsPrimary        bool      `json:"is_primary"`

	Inspection *Inspection `gorm:"foreignKey:InspectionID"`
	Room       *Room       `gorm:"foreignKey:RoomID"`
	Timestamp
}
