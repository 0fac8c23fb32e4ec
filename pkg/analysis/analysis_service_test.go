package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) CreateRoom(ctx context.Context, room *entities.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetRoomByID(ctx context.Context, id string) (*entities.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRoomsByInspection(ctx context.Context, inspectionID string) ([]*entities.Room, error) {
	args := m.Called(ctx, inspectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Room), args.Error(1)
}

func (m *MockRoomRepository) GetSelectedRooms(ctx context.Context, inspectionID string) ([]*entities.Room, error) {
	args := m.Called(ctx, inspectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRoomByName(ctx context.Context, inspectionID string, roomName string) (*entities.Room, error) {
	args := m.Called(ctx, inspectionID, roomName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room *entities.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) CreatePhoto(ctx context.Context, photo *entities.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) UpdatePhoto(ctx context.Context, photo *entities.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetPhotoByID(ctx context.Context, id string) (*entities.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotosByRoom(ctx context.Context, roomID string) ([]*entities.Photo, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Photo), args.Error(1)
}

func (m *MockPhotoRepository) CountPhotosByRoom(ctx context.Context, roomID string) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) ClearPrimaryForRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockPhotoRepository) SetPrimary(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeletePhoto(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInspectionRepository struct {
	mock.Mock
}

func (m *MockInspectionRepository) CreateInspection(ctx context.Context, inspection *entities.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetInspectionByID(ctx context.Context, id string) (*entities.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) GetInspectionWithRooms(ctx context.Context, id string) (*entities.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) GetInspections(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Inspection, int64, error) {
	args := m.Called(ctx, userID, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Inspection), args.Get(1).(int64), args.Error(2)
}

func (m *MockInspectionRepository) UpdateInspection(ctx context.Context, inspection *entities.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepository) DeleteInspection(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetInspectionByShareToken(ctx context.Context, token string) (*entities.Inspection, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Inspection), args.Error(1)
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

func newTestService(userRepo *MockUserRepository) *analysisService {
	return &analysisService{
		roomRepository:       new(MockRoomRepository),
		photoRepository:      new(MockPhotoRepository),
		inspectionRepository: new(MockInspectionRepository),
		userRepository:       userRepo,
		httpClient:           &http.Client{Timeout: 5 * time.Second},
		apiBase:              defaultGeminiAPIBase,
	}
}

func TestAnalyzePhoto_MissingPhotoURL(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrPhotoURLRequired)
	userRepo.AssertNotCalled(t, "DebitAnalysisCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzePhoto_InvalidPhotoURL(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       "not-a-url",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidPhotoURL)
}

func TestAnalyzePhoto_MissingRoomName(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       "https://example.com/photo.jpg",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "   ",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrRoomNameMissing)
	// Validation failures must not consume credits.
	userRepo.AssertNotCalled(t, "DebitAnalysisCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzePhoto_InvalidInspectionType(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       "https://example.com/photo.jpg",
		InspectionType: "annual",
		RoomName:       "Kitchen",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidInspectionType)
}

func TestAnalyzePhoto_InsufficientCredits(t *testing.T) {
	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(gorm.ErrRecordNotFound)

	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       "https://example.com/photo.jpg",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	userRepo.AssertExpectations(t)
}

func TestAnalyzePhoto_KeyMissing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(nil)

	service := newTestService(userRepo)

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       "https://example.com/photo.jpg",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrAnalysisKeyMissing)
}

// fakeGemini serves both the photo fetch and the generateContent call so the
// whole analysis round trip runs against one local server.
func fakeGemini(t *testing.T, modelReply string, modelStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/photo.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("fake-image-bytes"))
	})
	mux.HandleFunc("/v1beta/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(modelStatus)
		_, _ = w.Write([]byte(modelReply))
	})
	return httptest.NewServer(mux)
}

func TestAnalyzePhoto_Success(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	reply := `{
		"candidates": [{"content": {"parts": [{"text": "` +
		"```json\\n{\\\"description\\\": \\\"Clean kitchen with minor clutter.\\\", \\\"cleanliness_score\\\": 8}\\n```" +
		`"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"totalTokenCount": 321}
	}`
	server := fakeGemini(t, reply, http.StatusOK)
	defer server.Close()

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(nil)

	service := newTestService(userRepo)
	service.apiBase = server.URL

	res, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       server.URL + "/photo.jpg",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, userID)

	assert.NoError(t, err)
	assert.Equal(t, "Clean kitchen with minor clutter.", res.Description)
	assert.Equal(t, 8, res.CleanlinessScore)
	assert.Equal(t, domain.InspectionTypeEntry, res.Metadata.InspectionType)
	assert.Equal(t, "Kitchen", res.Metadata.RoomName)
	assert.Equal(t, 321, res.Metadata.TokensUsed)
	assert.False(t, res.Metadata.AnalyzedAt.IsZero())
	userRepo.AssertExpectations(t)
}

func TestAnalyzePhoto_RateLimited(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	server := fakeGemini(t, `{"error": "quota"}`, http.StatusTooManyRequests)
	defer server.Close()

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(nil)

	service := newTestService(userRepo)
	service.apiBase = server.URL

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       server.URL + "/photo.jpg",
		InspectionType: domain.InspectionTypeExit,
		RoomName:       "Bathroom",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrAnalysisRateLimited)
}

func TestAnalyzePhoto_ContentPolicyBlocked(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	reply := `{"candidates": [], "promptFeedback": {"blockReason": "SAFETY"}}`
	server := fakeGemini(t, reply, http.StatusOK)
	defer server.Close()

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(nil)

	service := newTestService(userRepo)
	service.apiBase = server.URL

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       server.URL + "/photo.jpg",
		InspectionType: domain.InspectionTypeRoutine,
		RoomName:       "Bedroom",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrAnalysisContentPolicy)
}

func TestAnalyzePhoto_UpstreamFailure(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	server := fakeGemini(t, `{"error": "boom"}`, http.StatusInternalServerError)
	defer server.Close()

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostPhotoAnalysis).
		Return(nil)

	service := newTestService(userRepo)
	service.apiBase = server.URL

	_, err := service.AnalyzePhoto(context.Background(), domain.AnalyzePhotoRequest{
		PhotoURL:       server.URL + "/photo.jpg",
		InspectionType: domain.InspectionTypeEntry,
		RoomName:       "Kitchen",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrAnalysisUpstreamFailed)
}

func TestAnalyzeRoom_Success(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	reply := `{
		"candidates": [{"content": {"parts": [{"text": "- Countertops: clean\n- Floor: needs mopping"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"totalTokenCount": 150}
	}`
	server := fakeGemini(t, reply, http.StatusOK)
	defer server.Close()

	userID := uuid.NewString()
	userRepo := new(MockUserRepository)
	userRepo.On("DebitAnalysisCredits", mock.Anything, userID, domain.CostRoomChecklist).
		Return(nil)

	service := newTestService(userRepo)
	service.apiBase = server.URL

	res, err := service.AnalyzeRoom(context.Background(), domain.AnalyzeRoomRequest{
		ImageURL:       server.URL + "/photo.jpg",
		RoomName:       "Kitchen",
		InspectionType: domain.InspectionTypeEntry,
	}, userID)

	assert.NoError(t, err)
	assert.Contains(t, res.Analysis, "Countertops")
	assert.Equal(t, 150, res.TokensUsed)
	userRepo.AssertExpectations(t)
}

func TestAnalyzeRoom_MissingImageURL(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(userRepo)

	_, err := service.AnalyzeRoom(context.Background(), domain.AnalyzeRoomRequest{
		RoomName:       "Kitchen",
		InspectionType: domain.InspectionTypeEntry,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrImageURLRequired)
}

func TestReviewAnalysis_ApproveWithoutEdits(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	inspectionID := uuid.New()

	roomRecord := &entities.Room{
		ID:           roomID,
		InspectionID: inspectionID,
		RoomName:     "Kitchen",
	}
	inspectionRecord := &entities.Inspection{
		ID:     inspectionID,
		UserID: userID,
	}

	roomRepo := new(MockRoomRepository)
	roomRepo.On("GetRoomByID", mock.Anything, roomID.String()).Return(roomRecord, nil)
	roomRepo.On("UpdateRoom", mock.Anything, mock.MatchedBy(func(r *entities.Room) bool {
		return r.AIAnalysis == "Clean kitchen.\n\nCleanliness Score: 8/10"
	})).Return(nil)

	inspectionRepo := new(MockInspectionRepository)
	inspectionRepo.On("GetInspectionByID", mock.Anything, inspectionID.String()).Return(inspectionRecord, nil)

	service := newTestService(new(MockUserRepository))
	service.roomRepository = roomRepo
	service.inspectionRepository = inspectionRepo

	res, err := service.ReviewAnalysis(context.Background(), domain.ReviewAnalysisRequest{
		RoomID:             roomID.String(),
		Description:        "Clean kitchen.",
		CleanlinessScore:   8,
		InitialDescription: "Clean kitchen.",
		InitialScore:       8,
	}, userID.String())

	assert.NoError(t, err)
	assert.False(t, res.HasManualEdits)
	assert.Equal(t, 8, res.CleanlinessScore)
	roomRepo.AssertExpectations(t)
}

func TestReviewAnalysis_DetectsManualEdits(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	inspectionID := uuid.New()

	roomRepo := new(MockRoomRepository)
	roomRepo.On("GetRoomByID", mock.Anything, roomID.String()).
		Return(&entities.Room{ID: roomID, InspectionID: inspectionID}, nil)
	roomRepo.On("UpdateRoom", mock.Anything, mock.Anything).Return(nil)

	inspectionRepo := new(MockInspectionRepository)
	inspectionRepo.On("GetInspectionByID", mock.Anything, inspectionID.String()).
		Return(&entities.Inspection{ID: inspectionID, UserID: userID}, nil)

	service := newTestService(new(MockUserRepository))
	service.roomRepository = roomRepo
	service.inspectionRepository = inspectionRepo

	res, err := service.ReviewAnalysis(context.Background(), domain.ReviewAnalysisRequest{
		RoomID:             roomID.String(),
		Description:        "Actually quite dirty.",
		CleanlinessScore:   4,
		InitialDescription: "Clean kitchen.",
		InitialScore:       8,
	}, userID.String())

	assert.NoError(t, err)
	assert.True(t, res.HasManualEdits)
	assert.Equal(t, 4, res.CleanlinessScore)
}

func TestReviewAnalysis_ClampsScore(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	inspectionID := uuid.New()

	roomRepo := new(MockRoomRepository)
	roomRepo.On("GetRoomByID", mock.Anything, roomID.String()).
		Return(&entities.Room{ID: roomID, InspectionID: inspectionID}, nil)
	roomRepo.On("UpdateRoom", mock.Anything, mock.Anything).Return(nil)

	inspectionRepo := new(MockInspectionRepository)
	inspectionRepo.On("GetInspectionByID", mock.Anything, inspectionID.String()).
		Return(&entities.Inspection{ID: inspectionID, UserID: userID}, nil)

	service := newTestService(new(MockUserRepository))
	service.roomRepository = roomRepo
	service.inspectionRepository = inspectionRepo

	res, err := service.ReviewAnalysis(context.Background(), domain.ReviewAnalysisRequest{
		RoomID:             roomID.String(),
		Description:        "Spotless.",
		CleanlinessScore:   42,
		InitialDescription: "Spotless.",
		InitialScore:       10,
	}, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, 10, res.CleanlinessScore)
}

func TestReviewAnalysis_UnauthorizedUser(t *testing.T) {
	roomID := uuid.New()
	inspectionID := uuid.New()

	roomRepo := new(MockRoomRepository)
	roomRepo.On("GetRoomByID", mock.Anything, roomID.String()).
		Return(&entities.Room{ID: roomID, InspectionID: inspectionID}, nil)

	inspectionRepo := new(MockInspectionRepository)
	inspectionRepo.On("GetInspectionByID", mock.Anything, inspectionID.String()).
		Return(&entities.Inspection{ID: inspectionID, UserID: uuid.New()}, nil)

	service := newTestService(new(MockUserRepository))
	service.roomRepository = roomRepo
	service.inspectionRepository = inspectionRepo

	_, err := service.ReviewAnalysis(context.Background(), domain.ReviewAnalysisRequest{
		RoomID:             roomID.String(),
		Description:        "Clean.",
		CleanlinessScore:   8,
		InitialDescription: "Clean.",
		InitialScore:       8,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedInspection)
	roomRepo.AssertNotCalled(t, "UpdateRoom", mock.Anything, mock.Anything)
}
