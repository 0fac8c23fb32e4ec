package inspection

import (
	"context"
	"mime/multipart"
	"testing"

	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

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

type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	args := m.Called(fileName, file, dir, allowedTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UploadFileWithKey(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	args := m.Called(objectKey, file, allowedTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	args := m.Called(objectKey, file, allowedTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

func TestCreateInspection_Defaults(t *testing.T) {
	userID := uuid.New()

	repo := new(MockInspectionRepository)
	repo.On("CreateInspection", mock.Anything, mock.MatchedBy(func(i *entities.Inspection) bool {
		return i.Status == domain.InspectionStatusPending && i.UserID == userID
	})).Return(nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	res, err := service.CreateInspection(context.Background(), domain.CreateInspectionRequest{
		Address:        "12 Baker Street",
		InspectionType: domain.InspectionTypeEntry,
		OwnerName:      "A. Landlord",
		TenantName:     "B. Tenant",
		InspectionDate: "2026-09-15",
	}, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, domain.InspectionStatusPending, res.Status)
	assert.Equal(t, "12 Baker Street", res.Address)
	repo.AssertExpectations(t)
}

func TestCreateInspection_InvalidType(t *testing.T) {
	service := NewInspectionService(new(MockInspectionRepository), new(MockAwsS3))

	_, err := service.CreateInspection(context.Background(), domain.CreateInspectionRequest{
		Address:        "12 Baker Street",
		InspectionType: "quarterly",
		InspectionDate: "2026-09-15",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidInspectionType)
}

func TestCreateInspection_InvalidDate(t *testing.T) {
	service := NewInspectionService(new(MockInspectionRepository), new(MockAwsS3))

	_, err := service.CreateInspection(context.Background(), domain.CreateInspectionRequest{
		Address:        "12 Baker Street",
		InspectionType: domain.InspectionTypeEntry,
		InspectionDate: "15/09/2026",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidInspectionDate)
}

func TestCancelInspection_AlreadyClosed(t *testing.T) {
	userID := uuid.New()
	inspectionRecord := &entities.Inspection{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.InspectionStatusCompleted,
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByID", mock.Anything, inspectionRecord.ID.String()).Return(inspectionRecord, nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	err := service.CancelInspection(context.Background(), inspectionRecord.ID.String(), userID.String())

	assert.ErrorIs(t, err, domain.ErrInspectionAlreadyClosed)
	repo.AssertNotCalled(t, "UpdateInspection", mock.Anything, mock.Anything)
}

func TestCreateShare_MintsToken(t *testing.T) {
	userID := uuid.New()
	inspectionRecord := &entities.Inspection{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.InspectionStatusCompleted,
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByID", mock.Anything, inspectionRecord.ID.String()).Return(inspectionRecord, nil)
	repo.On("UpdateInspection", mock.Anything, mock.MatchedBy(func(i *entities.Inspection) bool {
		return i.ShareEnabled && i.ShareToken != nil && *i.ShareToken != ""
	})).Return(nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	res, err := service.CreateShare(context.Background(), inspectionRecord.ID.String(), userID.String())

	assert.NoError(t, err)
	assert.True(t, res.ShareEnabled)
	assert.NotEmpty(t, res.ShareToken)
	assert.Contains(t, res.ShareURL, "/shared/inspection/"+res.ShareToken)
	repo.AssertExpectations(t)
}

func TestCreateShare_ReusesExistingToken(t *testing.T) {
	userID := uuid.New()
	existingToken := uuid.NewString()
	inspectionRecord := &entities.Inspection{
		ID:         uuid.New(),
		UserID:     userID,
		ShareToken: &existingToken,
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByID", mock.Anything, inspectionRecord.ID.String()).Return(inspectionRecord, nil)
	repo.On("UpdateInspection", mock.Anything, mock.Anything).Return(nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	res, err := service.CreateShare(context.Background(), inspectionRecord.ID.String(), userID.String())

	assert.NoError(t, err)
	assert.Equal(t, existingToken, res.ShareToken)
}

func TestRevokeShare_ClearsToken(t *testing.T) {
	userID := uuid.New()
	token := uuid.NewString()
	inspectionRecord := &entities.Inspection{
		ID:           uuid.New(),
		UserID:       userID,
		ShareToken:   &token,
		ShareEnabled: true,
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByID", mock.Anything, inspectionRecord.ID.String()).Return(inspectionRecord, nil)
	repo.On("UpdateInspection", mock.Anything, mock.MatchedBy(func(i *entities.Inspection) bool {
		return !i.ShareEnabled && i.ShareToken == nil
	})).Return(nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	err := service.RevokeShare(context.Background(), inspectionRecord.ID.String(), userID.String())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetSharedReport_DisabledShareRejected(t *testing.T) {
	token := uuid.NewString()
	inspectionRecord := &entities.Inspection{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ShareToken:   &token,
		ShareEnabled: false,
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByShareToken", mock.Anything, token).Return(inspectionRecord, nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	_, err := service.GetSharedReport(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrShareNotEnabled)
}

func TestGetSharedReport_UnknownToken(t *testing.T) {
	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByShareToken", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := NewInspectionService(repo, new(MockAwsS3))

	_, err := service.GetSharedReport(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrShareTokenNotFound)
}

func TestGetSharedReport_OnlySelectedRooms(t *testing.T) {
	token := uuid.NewString()
	inspectionID := uuid.New()
	inspectionRecord := &entities.Inspection{
		ID:           inspectionID,
		UserID:       uuid.New(),
		ShareToken:   &token,
		ShareEnabled: true,
		Status:       domain.InspectionStatusCompleted,
		Rooms: []*entities.Room{
			{ID: uuid.New(), InspectionID: inspectionID, RoomName: "Kitchen", IsSelected: true, IsCompleted: true},
			{ID: uuid.New(), InspectionID: inspectionID, RoomName: "Garage", IsSelected: false},
		},
	}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionByShareToken", mock.Anything, token).Return(inspectionRecord, nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	report, err := service.GetSharedReport(context.Background(), token)

	assert.NoError(t, err)
	assert.Len(t, report.Rooms, 1)
	assert.Equal(t, "Kitchen", report.Rooms[0].RoomName)
	assert.Equal(t, 1, report.Inspection.RoomsSelected)
	assert.Equal(t, 1, report.Inspection.RoomsCompleted)
}

func TestGetInspectionByID_UnauthorizedUser(t *testing.T) {
	inspectionRecord := &entities.Inspection{ID: uuid.New(), UserID: uuid.New()}

	repo := new(MockInspectionRepository)
	repo.On("GetInspectionWithRooms", mock.Anything, inspectionRecord.ID.String()).Return(inspectionRecord, nil)

	service := NewInspectionService(repo, new(MockAwsS3))

	_, err := service.GetInspectionByID(context.Background(), inspectionRecord.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedInspection)
}
