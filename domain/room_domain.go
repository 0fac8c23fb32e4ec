package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRooms      = "rooms retrieved successfully"
	MessageSuccessToggleRoom    = "room selection updated successfully"
	MessageSuccessAddCustomRoom = "custom room added successfully"
	MessageSuccessRemoveRoom    = "room removed successfully"
	MessageRoomAlreadyAdded     = "room already added"

	MessageFailedGetRooms      = "failed to retrieve rooms"
	MessageFailedToggleRoom    = "failed to update room selection"
	MessageFailedAddCustomRoom = "failed to add custom room"
	MessageFailedRemoveRoom    = "failed to remove room"

	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNameRequired    = errors.New("room name is required")
	ErrRoomAlreadyAdded    = errors.New("room already added")
	ErrUnknownStandardRoom = errors.New("unknown standard room name")
)

const (
	RoomTypeStandard = "standard"
	RoomTypeCustom   = "custom"
)

// StandardRoomCatalog is the fixed set of selectable room names.
var StandardRoomCatalog = []string{
	"Kitchen",
	"Bathroom",
	"Bedroom",
	"Living Room",
	"Dining Room",
	"Laundry",
	"Hallway",
	"Balcony",
	"Garage",
	"Garden",
}

type (
	ToggleRoomRequest struct {
		RoomName string `json:"room_name" validate:"required"`
	}

	AddCustomRoomRequest struct {
		RoomName string `json:"room_name" validate:"required"`
	}

	RoomResponse struct {
		ID          string     `json:"id"`
		RoomName    string     `json:"room_name"`
		RoomType    string     `json:"room_type"`
		IsSelected  bool       `json:"is_selected"`
		IsCompleted bool       `json:"is_completed"`
		PhotoURL    string     `json:"photo_url,omitempty"`
		Comments    string     `json:"comments,omitempty"`
		AIAnalysis  string     `json:"ai_analysis,omitempty"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
