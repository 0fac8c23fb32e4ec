package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAnalyzePhoto   = "photo analyzed successfully"
	MessageSuccessAnalyzeRoom    = "room photo analyzed successfully"
	MessageSuccessReviewAnalysis = "analysis approved successfully"

	MessageFailedAnalyzePhoto   = "failed to analyze photo"
	MessageFailedAnalyzeRoom    = "failed to analyze room photo"
	MessageFailedReviewAnalysis = "failed to approve analysis"

	ErrPhotoURLRequired       = errors.New("photoUrl is required")
	ErrInvalidPhotoURL        = errors.New("photoUrl must be a valid http or https URL")
	ErrRoomNameMissing        = errors.New("roomName is required")
	ErrImageURLRequired       = errors.New("imageUrl is required")
	ErrAnalysisKeyMissing     = errors.New("vision model API key is not configured")
	ErrAnalysisRateLimited    = errors.New("vision model rate limit exceeded, try again later")
	ErrAnalysisContentPolicy  = errors.New("photo was rejected by the vision model content policy")
	ErrAnalysisUpstreamFailed = errors.New("vision model request failed")
)

const (
	MinCleanlinessScore     = 1
	MaxCleanlinessScore     = 10
	DefaultCleanlinessScore = 7
)

type (
	AnalyzePhotoRequest struct {
		PhotoURL       string `json:"photoUrl" validate:"required,url"`
		InspectionType string `json:"inspectionType" validate:"required,oneof=entry exit routine"`
		RoomName       string `json:"roomName" validate:"required"`
	}

	AnalysisMetadata struct {
		InspectionType string     `json:"inspection_type"`
		RoomName       string     `json:"room_name"`
		TokensUsed     int        `json:"tokens_used"`
		ModelUsed      string     `json:"model_used"`
		AnalyzedAt     time.Time  `json:"analyzed_at"`
		ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
		HasManualEdits *bool      `json:"has_manual_edits,omitempty"`
	}

	AnalyzePhotoResponse struct {
		Description      string           `json:"description"`
		CleanlinessScore int              `json:"cleanliness_score"`
		Metadata         AnalysisMetadata `json:"metadata"`
	}

	AnalyzeRoomRequest struct {
		ImageURL       string `json:"imageUrl" validate:"required,url"`
		RoomName       string `json:"roomName" validate:"required"`
		RoomType       string `json:"roomType" validate:"omitempty"`
		InspectionType string `json:"inspectionType" validate:"required,oneof=entry exit routine"`
	}

	AnalyzeRoomResponse struct {
		Analysis   string    `json:"analysis"`
		Timestamp  time.Time `json:"timestamp"`
		TokensUsed int       `json:"tokens_used"`
	}

	ReviewAnalysisRequest struct {
		RoomID             string `json:"room_id" validate:"required,uuid"`
		PhotoID            string `json:"photo_id" validate:"omitempty,uuid"`
		Description        string `json:"description" validate:"required"`
		CleanlinessScore   int    `json:"cleanliness_score" validate:"required,min=1,max=10"`
		InitialDescription string `json:"initial_description" validate:"required"`
		InitialScore       int    `json:"initial_score" validate:"required,min=1,max=10"`
	}

	ReviewAnalysisResponse struct {
		Description      string    `json:"description"`
		CleanlinessScore int       `json:"cleanliness_score"`
		HasManualEdits   bool      `json:"has_manual_edits"`
		ReviewedAt       time.Time `json:"reviewed_at"`
	}
)
