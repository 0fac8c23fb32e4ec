package analysis

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/internal/utils"
	"PropInspect-Backend/pkg/inspection"
	"PropInspect-Backend/pkg/photo"
	"PropInspect-Backend/pkg/room"
	"PropInspect-Backend/pkg/user"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"
)

const defaultGeminiAPIBase = "https://generativelanguage.googleapis.com"

type (
	AnalysisService interface {
		AnalyzePhoto(ctx context.Context, req domain.AnalyzePhotoRequest, userID string) (domain.AnalyzePhotoResponse, error)
		AnalyzeRoom(ctx context.Context, req domain.AnalyzeRoomRequest, userID string) (domain.AnalyzeRoomResponse, error)
		ReviewAnalysis(ctx context.Context, req domain.ReviewAnalysisRequest, userID string) (domain.ReviewAnalysisResponse, error)
	}

	analysisService struct {
		roomRepository       room.RoomRepository
		photoRepository      photo.PhotoRepository
		inspectionRepository inspection.InspectionRepository
		userRepository       user.UserRepository
		httpClient           *http.Client
		apiBase              string
	}
)

func NewAnalysisService(
	roomRepository room.RoomRepository,
	photoRepository photo.PhotoRepository,
	inspectionRepository inspection.InspectionRepository,
	userRepository user.UserRepository,
) AnalysisService {
	return &analysisService{
		roomRepository:       roomRepository,
		photoRepository:      photoRepository,
		inspectionRepository: inspectionRepository,
		userRepository:       userRepository,
		httpClient:           &http.Client{Timeout: 60 * time.Second},
		apiBase:              defaultGeminiAPIBase,
	}
}

func validHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func (s *analysisService) AnalyzePhoto(ctx context.Context, req domain.AnalyzePhotoRequest, userID string) (domain.AnalyzePhotoResponse, error) {
	if req.PhotoURL == "" {
		return domain.AnalyzePhotoResponse{}, domain.ErrPhotoURLRequired
	}
	if !validHTTPURL(req.PhotoURL) {
		return domain.AnalyzePhotoResponse{}, domain.ErrInvalidPhotoURL
	}
	if strings.TrimSpace(req.RoomName) == "" {
		return domain.AnalyzePhotoResponse{}, domain.ErrRoomNameMissing
	}
	if !domain.ValidInspectionType(req.InspectionType) {
		return domain.AnalyzePhotoResponse{}, domain.ErrInvalidInspectionType
	}

	if err := s.debitCredits(ctx, userID, domain.CostPhotoAnalysis); err != nil {
		return domain.AnalyzePhotoResponse{}, err
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-pro"
	}

	prompt := cleanlinessPrompt(req.InspectionType, req.RoomName)
	text, tokens, err := s.callGemini(ctx, model, prompt, req.PhotoURL)
	if err != nil {
		return domain.AnalyzePhotoResponse{}, err
	}

	parsed := ParseAnalysisText(text)

	return domain.AnalyzePhotoResponse{
		Description:      parsed.Description,
		CleanlinessScore: parsed.CleanlinessScore,
		Metadata: domain.AnalysisMetadata{
			InspectionType: req.InspectionType,
			RoomName:       req.RoomName,
			TokensUsed:     tokens,
			ModelUsed:      model,
			AnalyzedAt:     time.Now().UTC(),
		},
	}, nil
}

func (s *analysisService) AnalyzeRoom(ctx context.Context, req domain.AnalyzeRoomRequest, userID string) (domain.AnalyzeRoomResponse, error) {
	if req.ImageURL == "" {
		return domain.AnalyzeRoomResponse{}, domain.ErrImageURLRequired
	}
	if !validHTTPURL(req.ImageURL) {
		return domain.AnalyzeRoomResponse{}, domain.ErrInvalidPhotoURL
	}
	if strings.TrimSpace(req.RoomName) == "" {
		return domain.AnalyzeRoomResponse{}, domain.ErrRoomNameMissing
	}
	if !domain.ValidInspectionType(req.InspectionType) {
		return domain.AnalyzeRoomResponse{}, domain.ErrInvalidInspectionType
	}

	if err := s.debitCredits(ctx, userID, domain.CostRoomChecklist); err != nil {
		return domain.AnalyzeRoomResponse{}, err
	}

	// The checklist endpoint runs on the cheaper flash variant.
	model := utils.GetConfig("GEMINI_FLASH_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	prompt := checklistPrompt(req.InspectionType, req.RoomName, req.RoomType)
	text, tokens, err := s.callGemini(ctx, model, prompt, req.ImageURL)
	if err != nil {
		return domain.AnalyzeRoomResponse{}, err
	}

	return domain.AnalyzeRoomResponse{
		Analysis:   strings.TrimSpace(text),
		Timestamp:  time.Now().UTC(),
		TokensUsed: tokens,
	}, nil
}

func (s *analysisService) ReviewAnalysis(ctx context.Context, req domain.ReviewAnalysisRequest, userID string) (domain.ReviewAnalysisResponse, error) {
	roomRecord, err := s.roomRepository.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewAnalysisResponse{}, domain.ErrRoomNotFound
		}
		return domain.ReviewAnalysisResponse{}, err
	}

	inspectionRecord, err := s.inspectionRepository.GetInspectionByID(ctx, roomRecord.InspectionID.String())
	if err != nil {
		return domain.ReviewAnalysisResponse{}, err
	}
	if inspectionRecord.UserID.String() != userID {
		return domain.ReviewAnalysisResponse{}, domain.ErrUnauthorizedInspection
	}

	score := ClampScore(req.CleanlinessScore)
	hasManualEdits := req.Description != req.InitialDescription || score != req.InitialScore
	reviewedAt := time.Now().UTC()

	roomRecord.AIAnalysis = FormatAnalysisText(req.Description, score)
	if err := s.roomRepository.UpdateRoom(ctx, roomRecord); err != nil {
		return domain.ReviewAnalysisResponse{}, err
	}

	if req.PhotoID != "" {
		photoRecord, err := s.photoRepository.GetPhotoByID(ctx, req.PhotoID)
		if err == nil && photoRecord.RoomID == roomRecord.ID {
			photoRecord.Description = req.Description
			if err := s.photoRepository.UpdatePhoto(ctx, photoRecord); err != nil {
				fmt.Printf("Error updating photo description: %v\n", err)
			}
		}
	}

	return domain.ReviewAnalysisResponse{
		Description:      req.Description,
		CleanlinessScore: score,
		HasManualEdits:   hasManualEdits,
		ReviewedAt:       reviewedAt,
	}, nil
}

// FormatAnalysisText renders an approved analysis into the text stored on the
// room record.
func FormatAnalysisText(description string, score int) string {
	return fmt.Sprintf("%s\n\nCleanliness Score: %d/10", strings.TrimSpace(description), score)
}

func (s *analysisService) debitCredits(ctx context.Context, userID string, cost int) error {
	if err := s.userRepository.DebitAnalysisCredits(ctx, userID, cost); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInsufficientCredits
		}
		return err
	}
	return nil
}

func (s *analysisService) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: fetching photo: %v", domain.ErrAnalysisUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: fetching photo returned %s", domain.ErrAnalysisUpstreamFailed, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, domain.MaxPhotoSizeBytes))
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}

	return data, mimeType, nil
}

func (s *analysisService) callGemini(ctx context.Context, model string, prompt string, imageURL string) (string, int, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return "", 0, domain.ErrAnalysisKeyMissing
	}

	imageData, mimeType, err := s.fetchImage(ctx, imageURL)
	if err != nil {
		return "", 0, err
	}

	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.apiBase, model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64.StdEncoding.EncodeToString(imageData),
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrAnalysisUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", 0, domain.ErrAnalysisRateLimited
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("%w: %s - %s", domain.ErrAnalysisUpstreamFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
		PromptFeedback struct {
			BlockReason string `json:"blockReason"`
		} `json:"promptFeedback"`
		UsageMetadata struct {
			TotalTokenCount int `json:"totalTokenCount"`
		} `json:"usageMetadata"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrAnalysisUpstreamFailed, err)
	}

	if geminiResp.PromptFeedback.BlockReason != "" {
		return "", 0, domain.ErrAnalysisContentPolicy
	}

	if len(geminiResp.Candidates) == 0 {
		return "", 0, domain.ErrAnalysisUpstreamFailed
	}

	candidate := geminiResp.Candidates[0]
	if candidate.FinishReason == "SAFETY" {
		return "", 0, domain.ErrAnalysisContentPolicy
	}

	if len(candidate.Content.Parts) == 0 {
		return "", 0, domain.ErrAnalysisUpstreamFailed
	}

	return candidate.Content.Parts[0].Text, geminiResp.UsageMetadata.TotalTokenCount, nil
}
