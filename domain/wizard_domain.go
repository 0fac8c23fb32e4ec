package domain

import "errors"

var (
	MessageSuccessGetWizardState = "wizard state retrieved successfully"
	MessageSuccessSaveRoom       = "room saved successfully"
	MessageInspectionCompleted   = "inspection completed"

	MessageFailedGetWizardState = "failed to retrieve wizard state"
	MessageFailedSaveRoom       = "failed to save room"

	ErrNoRoomsSelected   = errors.New("no rooms selected for this inspection")
	ErrWizardCompleted   = errors.New("inspection is already completed")
	ErrInvalidNavigation = errors.New("invalid navigation direction")
	ErrInvalidRoomIndex  = errors.New("room index out of range")
	ErrRoomNotInWizard   = errors.New("room is not part of this inspection")
)

const (
	NavigateNext     = "next"
	NavigatePrevious = "previous"
	NavigateJump     = "jump"
	NavigateStay     = "stay"
)

type (
	SaveRoomRequest struct {
		PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
		Comments    string `json:"comments" validate:"omitempty"`
		AIAnalysis  string `json:"ai_analysis" validate:"omitempty"`
		Direction   string `json:"direction" validate:"required,oneof=next previous jump stay"`
		TargetIndex int    `json:"target_index" validate:"omitempty,min=0"`
	}

	WizardRoom struct {
		RoomID      string `json:"room_id"`
		RoomName    string `json:"room_name"`
		RoomType    string `json:"room_type"`
		IsCompleted bool   `json:"is_completed"`
		PhotoURL    string `json:"photo_url,omitempty"`
		Comments    string `json:"comments,omitempty"`
		AIAnalysis  string `json:"ai_analysis,omitempty"`
	}

	WizardStateResponse struct {
		InspectionID   string       `json:"inspection_id"`
		Status         string       `json:"status"`
		Rooms          []WizardRoom `json:"rooms"`
		RoomsCompleted int          `json:"rooms_completed"`
		Completed      bool         `json:"completed"`
	}

	SaveRoomResponse struct {
		Room         WizardRoom  `json:"room"`
		Completed    bool        `json:"completed"`
		ReportPath   string      `json:"report_path,omitempty"`
		NextRoom     *WizardRoom `json:"next_room,omitempty"`
		CurrentIndex int         `json:"current_index"`
	}
)
