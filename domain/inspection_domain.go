package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateInspection = "inspection created successfully"
	MessageSuccessGetInspections   = "inspections retrieved successfully"
	MessageSuccessGetInspection    = "inspection retrieved successfully"
	MessageSuccessUpdateInspection = "inspection updated successfully"
	MessageSuccessCancelInspection = "inspection cancelled successfully"
	MessageSuccessDeleteInspection = "inspection deleted successfully"
	MessageSuccessGetReport        = "inspection report retrieved successfully"
	MessageSuccessCreateShare      = "share link created successfully"
	MessageSuccessGetShare         = "share settings retrieved successfully"
	MessageSuccessRevokeShare      = "share link revoked successfully"
	MessageSuccessEmailShare       = "report link sent successfully"

	MessageFailedCreateInspection = "failed to create inspection"
	MessageFailedGetInspections   = "failed to retrieve inspections"
	MessageFailedGetInspection    = "failed to retrieve inspection"
	MessageFailedUpdateInspection = "failed to update inspection"
	MessageFailedCancelInspection = "failed to cancel inspection"
	MessageFailedDeleteInspection = "failed to delete inspection"
	MessageFailedGetReport        = "failed to retrieve inspection report"
	MessageFailedCreateShare      = "failed to create share link"
	MessageFailedGetShare         = "failed to retrieve share settings"
	MessageFailedRevokeShare      = "failed to revoke share link"
	MessageFailedEmailShare       = "failed to send report link"

	ErrInspectionNotFound      = errors.New("inspection not found")
	ErrInvalidInspectionType   = errors.New("inspection type must be entry, exit or routine")
	ErrInvalidInspectionDate   = errors.New("invalid inspection date")
	ErrInspectionCancelled     = errors.New("inspection is cancelled")
	ErrShareNotEnabled         = errors.New("sharing is not enabled for this inspection")
	ErrShareTokenNotFound      = errors.New("shared inspection not found")
	ErrUnauthorizedInspection  = errors.New("unauthorized access to inspection")
	ErrInspectionAlreadyClosed = errors.New("inspection is already completed or cancelled")
)

const (
	InspectionTypeEntry   = "entry"
	InspectionTypeExit    = "exit"
	InspectionTypeRoutine = "routine"

	InspectionStatusPending    = "pending"
	InspectionStatusInProgress = "in_progress"
	InspectionStatusCompleted  = "completed"
	InspectionStatusCancelled  = "cancelled"
)

func ValidInspectionType(t string) bool {
	return t == InspectionTypeEntry || t == InspectionTypeExit || t == InspectionTypeRoutine
}

type (
	CreateInspectionRequest struct {
		Address        string `json:"address" validate:"required"`
		InspectionType string `json:"inspection_type" validate:"required,oneof=entry exit routine"`
		OwnerName      string `json:"owner_name" validate:"required"`
		TenantName     string `json:"tenant_name" validate:"omitempty"`
		InspectionDate string `json:"inspection_date" validate:"required"`
	}

	UpdateInspectionRequest struct {
		Address        string `json:"address" validate:"omitempty"`
		InspectionType string `json:"inspection_type" validate:"omitempty,oneof=entry exit routine"`
		OwnerName      string `json:"owner_name" validate:"omitempty"`
		TenantName     string `json:"tenant_name" validate:"omitempty"`
		InspectionDate string `json:"inspection_date" validate:"omitempty"`
	}

	InspectionResponse struct {
		ID             string    `json:"id"`
		Address        string    `json:"address"`
		InspectionType string    `json:"inspection_type"`
		OwnerName      string    `json:"owner_name"`
		TenantName     string    `json:"tenant_name,omitempty"`
		InspectionDate time.Time `json:"inspection_date"`
		Status         string    `json:"status"`
		ShareEnabled   bool      `json:"share_enabled"`
		RoomsSelected  int       `json:"rooms_selected"`
		RoomsCompleted int       `json:"rooms_completed"`
		CreatedAt      time.Time `json:"created_at"`
	}

	ShareResponse struct {
		ShareEnabled bool   `json:"share_enabled"`
		ShareToken   string `json:"share_token,omitempty"`
		ShareURL     string `json:"share_url,omitempty"`
	}

	EmailShareRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ReportRoom struct {
		RoomID      string        `json:"room_id"`
		RoomName    string        `json:"room_name"`
		RoomType    string        `json:"room_type"`
		IsCompleted bool          `json:"is_completed"`
		PhotoURL    string        `json:"photo_url,omitempty"`
		Comments    string        `json:"comments,omitempty"`
		AIAnalysis  string        `json:"ai_analysis,omitempty"`
		CompletedAt *time.Time    `json:"completed_at,omitempty"`
		Photos      []ReportPhoto `json:"photos,omitempty"`
	}

	ReportPhoto struct {
		PhotoID       string `json:"photo_id"`
		PublicURL     string `json:"public_url"`
		CaptureMethod string `json:"capture_method"`
		Description   string `json:"description,omitempty"`
		IsPrimary     bool   `json:"is_primary"`
	}

	InspectionReportResponse struct {
		Inspection InspectionResponse `json:"inspection"`
		Rooms      []ReportRoom       `json:"rooms"`
	}
)
