package inspection

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"
	"PropInspect-Backend/internal/utils"
	"PropInspect-Backend/internal/utils/mailing"
	"PropInspect-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InspectionService interface {
		CreateInspection(ctx context.Context, req domain.CreateInspectionRequest, userID string) (domain.InspectionResponse, error)
		GetInspections(ctx context.Context, userID string, status string, page, limit int) ([]domain.InspectionResponse, int64, error)
		GetInspectionByID(ctx context.Context, id string, userID string) (domain.InspectionResponse, error)
		UpdateInspection(ctx context.Context, id string, req domain.UpdateInspectionRequest, userID string) error
		CancelInspection(ctx context.Context, id string, userID string) error
		DeleteInspection(ctx context.Context, id string, userID string) error
		GetReport(ctx context.Context, id string, userID string) (domain.InspectionReportResponse, error)
		GetShare(ctx context.Context, id string, userID string) (domain.ShareResponse, error)
		CreateShare(ctx context.Context, id string, userID string) (domain.ShareResponse, error)
		RevokeShare(ctx context.Context, id string, userID string) error
		GetSharedReport(ctx context.Context, token string) (domain.InspectionReportResponse, error)
		EmailShareLink(ctx context.Context, id string, userID string, req domain.EmailShareRequest) error
	}

	inspectionService struct {
		inspectionRepository InspectionRepository
		s3                   storage.AwsS3
	}
)

func NewInspectionService(inspectionRepository InspectionRepository, s3 storage.AwsS3) InspectionService {
	return &inspectionService{
		inspectionRepository: inspectionRepository,
		s3:                   s3,
	}
}

func (s *inspectionService) CreateInspection(ctx context.Context, req domain.CreateInspectionRequest, userID string) (domain.InspectionResponse, error) {
	if !domain.ValidInspectionType(req.InspectionType) {
		return domain.InspectionResponse{}, domain.ErrInvalidInspectionType
	}

	inspectionDate, err := time.Parse("2006-01-02", req.InspectionDate)
	if err != nil {
		return domain.InspectionResponse{}, domain.ErrInvalidInspectionDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InspectionResponse{}, domain.ErrParseUUID
	}

	inspection := &entities.Inspection{
		ID:             uuid.New(),
		UserID:         userUUID,
		Address:        req.Address,
		InspectionType: req.InspectionType,
		OwnerName:      req.OwnerName,
		TenantName:     req.TenantName,
		InspectionDate: inspectionDate,
		Status:         domain.InspectionStatusPending,
	}

	if err := s.inspectionRepository.CreateInspection(ctx, inspection); err != nil {
		return domain.InspectionResponse{}, err
	}

	return toInspectionResponse(inspection), nil
}

func (s *inspectionService) GetInspections(ctx context.Context, userID string, status string, page, limit int) ([]domain.InspectionResponse, int64, error) {
	inspections, count, err := s.inspectionRepository.GetInspections(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.InspectionResponse
	for _, inspection := range inspections {
		response = append(response, toInspectionResponse(inspection))
	}

	return response, count, nil
}

func (s *inspectionService) getOwnedInspection(ctx context.Context, id string, userID string) (*entities.Inspection, error) {
	inspection, err := s.inspectionRepository.GetInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInspectionNotFound
		}
		return nil, err
	}

	if inspection.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedInspection
	}

	return inspection, nil
}

func (s *inspectionService) GetInspectionByID(ctx context.Context, id string, userID string) (domain.InspectionResponse, error) {
	inspection, err := s.inspectionRepository.GetInspectionWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InspectionResponse{}, domain.ErrInspectionNotFound
		}
		return domain.InspectionResponse{}, err
	}

	if inspection.UserID.String() != userID {
		return domain.InspectionResponse{}, domain.ErrUnauthorizedInspection
	}

	return toInspectionResponse(inspection), nil
}

func (s *inspectionService) UpdateInspection(ctx context.Context, id string, req domain.UpdateInspectionRequest, userID string) error {
	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Address != "" {
		inspection.Address = req.Address
	}

	if req.InspectionType != "" {
		if !domain.ValidInspectionType(req.InspectionType) {
			return domain.ErrInvalidInspectionType
		}
		inspection.InspectionType = req.InspectionType
	}

	if req.OwnerName != "" {
		inspection.OwnerName = req.OwnerName
	}

	if req.TenantName != "" {
		inspection.TenantName = req.TenantName
	}

	if req.InspectionDate != "" {
		inspectionDate, err := time.Parse("2006-01-02", req.InspectionDate)
		if err != nil {
			return domain.ErrInvalidInspectionDate
		}
		inspection.InspectionDate = inspectionDate
	}

	return s.inspectionRepository.UpdateInspection(ctx, inspection)
}

func (s *inspectionService) CancelInspection(ctx context.Context, id string, userID string) error {
	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return err
	}

	if inspection.Status == domain.InspectionStatusCompleted || inspection.Status == domain.InspectionStatusCancelled {
		return domain.ErrInspectionAlreadyClosed
	}

	inspection.Status = domain.InspectionStatusCancelled
	return s.inspectionRepository.UpdateInspection(ctx, inspection)
}

func (s *inspectionService) DeleteInspection(ctx context.Context, id string, userID string) error {
	inspection, err := s.inspectionRepository.GetInspectionWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInspectionNotFound
		}
		return err
	}

	if inspection.UserID.String() != userID {
		return domain.ErrUnauthorizedInspection
	}

	// Best-effort removal of stored objects before the rows cascade away.
	for _, room := range inspection.Rooms {
		for _, photo := range room.Photos {
			if photo.StoragePath != "" {
				if err := s.s3.DeleteFile(photo.StoragePath); err != nil {
					fmt.Printf("Error deleting photo object %s: %v\n", photo.StoragePath, err)
				}
			}
		}
	}

	return s.inspectionRepository.DeleteInspection(ctx, id)
}

func (s *inspectionService) GetReport(ctx context.Context, id string, userID string) (domain.InspectionReportResponse, error) {
	inspection, err := s.inspectionRepository.GetInspectionWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InspectionReportResponse{}, domain.ErrInspectionNotFound
		}
		return domain.InspectionReportResponse{}, err
	}

	if inspection.UserID.String() != userID {
		return domain.InspectionReportResponse{}, domain.ErrUnauthorizedInspection
	}

	return toReportResponse(inspection), nil
}

func (s *inspectionService) GetShare(ctx context.Context, id string, userID string) (domain.ShareResponse, error) {
	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return domain.ShareResponse{}, err
	}

	res := domain.ShareResponse{ShareEnabled: inspection.ShareEnabled}
	if inspection.ShareEnabled && inspection.ShareToken != nil {
		res.ShareToken = *inspection.ShareToken
		res.ShareURL = shareURL(*inspection.ShareToken)
	}
	return res, nil
}

func (s *inspectionService) CreateShare(ctx context.Context, id string, userID string) (domain.ShareResponse, error) {
	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return domain.ShareResponse{}, err
	}

	if inspection.ShareToken == nil || *inspection.ShareToken == "" {
		token := uuid.New().String()
		inspection.ShareToken = &token
	}
	inspection.ShareEnabled = true

	if err := s.inspectionRepository.UpdateInspection(ctx, inspection); err != nil {
		return domain.ShareResponse{}, err
	}

	return domain.ShareResponse{
		ShareEnabled: true,
		ShareToken:   *inspection.ShareToken,
		ShareURL:     shareURL(*inspection.ShareToken),
	}, nil
}

func (s *inspectionService) RevokeShare(ctx context.Context, id string, userID string) error {
	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return err
	}

	inspection.ShareEnabled = false
	inspection.ShareToken = nil
	return s.inspectionRepository.UpdateInspection(ctx, inspection)
}

func (s *inspectionService) GetSharedReport(ctx context.Context, token string) (domain.InspectionReportResponse, error) {
	inspection, err := s.inspectionRepository.GetInspectionByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InspectionReportResponse{}, domain.ErrShareTokenNotFound
		}
		return domain.InspectionReportResponse{}, err
	}

	if !inspection.ShareEnabled {
		return domain.InspectionReportResponse{}, domain.ErrShareNotEnabled
	}

	return toReportResponse(inspection), nil
}

func (s *inspectionService) EmailShareLink(ctx context.Context, id string, userID string, req domain.EmailShareRequest) error {
	share, err := s.CreateShare(ctx, id, userID)
	if err != nil {
		return err
	}

	inspection, err := s.getOwnedInspection(ctx, id, userID)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>An inspection report for <b>%s</b> has been shared with you.</p><p><a href=\"%s\">View the report</a></p>",
		inspection.Address, share.ShareURL,
	)

	return mailing.SendMail(req.Email, "Inspection report shared with you", body)
}

func shareURL(token string) string {
	return fmt.Sprintf("%s/shared/inspection/%s", utils.GetConfig("APP_URL"), token)
}

func toInspectionResponse(inspection *entities.Inspection) domain.InspectionResponse {
	selected, completed := 0, 0
	for _, room := range inspection.Rooms {
		if room.IsSelected {
			selected++
			if room.IsCompleted {
				completed++
			}
		}
	}

	return domain.InspectionResponse{
		ID:             inspection.ID.String(),
		Address:        inspection.Address,
		InspectionType: inspection.InspectionType,
		OwnerName:      inspection.OwnerName,
		TenantName:     inspection.TenantName,
		InspectionDate: inspection.InspectionDate,
		Status:         inspection.Status,
		ShareEnabled:   inspection.ShareEnabled,
		RoomsSelected:  selected,
		RoomsCompleted: completed,
		CreatedAt:      inspection.CreatedAt,
	}
}

func toReportResponse(inspection *entities.Inspection) domain.InspectionReportResponse {
	report := domain.InspectionReportResponse{
		Inspection: toInspectionResponse(inspection),
	}

	for _, room := range inspection.Rooms {
		if !room.IsSelected {
			continue
		}

		reportRoom := domain.ReportRoom{
			RoomID:      room.ID.String(),
			RoomName:    room.RoomName,
			RoomType:    room.RoomType,
			IsCompleted: room.IsCompleted,
			PhotoURL:    room.PhotoURL,
			Comments:    room.Comments,
			AIAnalysis:  room.AIAnalysis,
			CompletedAt: room.CompletedAt,
		}

		for _, photo := range room.Photos {
			reportRoom.Photos = append(reportRoom.Photos, domain.ReportPhoto{
				PhotoID:       photo.ID.String(),
				PublicURL:     photo.PublicURL,
				CaptureMethod: photo.CaptureMethod,
				Description:   photo.Description,
				IsPrimary:     photo.IsPrimary,
			})
		}

		report.Rooms = append(report.Rooms, reportRoom)
	}

	return report
}
