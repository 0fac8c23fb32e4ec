package photo

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"
	"PropInspect-Backend/internal/utils/storage"
	"PropInspect-Backend/pkg/inspection"
	"PropInspect-Backend/pkg/room"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PhotoService interface {
		UploadPhoto(ctx context.Context, inspectionID string, req domain.UploadPhotoRequest, userID string) (domain.PhotoResponse, error)
		GetPhotos(ctx context.Context, inspectionID string, roomID string, userID string) ([]domain.PhotoResponse, error)
		SetPrimaryPhoto(ctx context.Context, inspectionID string, photoID string, userID string) error
		DeletePhoto(ctx context.Context, inspectionID string, photoID string, userID string) error
	}

	photoService struct {
		photoRepository      PhotoRepository
		roomRepository       room.RoomRepository
		inspectionRepository inspection.InspectionRepository
		s3                   storage.AwsS3
	}
)

func NewPhotoService(
	photoRepository PhotoRepository,
	roomRepository room.RoomRepository,
	inspectionRepository inspection.InspectionRepository,
	s3 storage.AwsS3,
) PhotoService {
	return &photoService{
		photoRepository:      photoRepository,
		roomRepository:       roomRepository,
		inspectionRepository: inspectionRepository,
		s3:                   s3,
	}
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" {
		name = "photo"
	}
	return name
}

// ObjectKey builds the deterministic storage path for a room photo:
// inspections/{inspectionID}/rooms/{roomID}/{method}_{timestamp}_{randomID}_{sanitizedName}
func ObjectKey(inspectionID, roomID, method, originalName string, now time.Time, randomID string) string {
	return fmt.Sprintf(
		"inspections/%s/rooms/%s/%s_%d_%s_%s",
		inspectionID, roomID, method, now.UnixMilli(), randomID, sanitizeFilename(originalName),
	)
}

func (s *photoService) checkOwnedRoom(ctx context.Context, inspectionID string, roomID string, userID string) (*entities.Room, error) {
	inspectionRecord, err := s.inspectionRepository.GetInspectionByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInspectionNotFound
		}
		return nil, err
	}

	if inspectionRecord.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedInspection
	}

	roomRecord, err := s.roomRepository.GetRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	if roomRecord.InspectionID.String() != inspectionID {
		return nil, domain.ErrRoomNotFound
	}

	return roomRecord, nil
}

func (s *photoService) UploadPhoto(ctx context.Context, inspectionID string, req domain.UploadPhotoRequest, userID string) (domain.PhotoResponse, error) {
	roomRecord, err := s.checkOwnedRoom(ctx, inspectionID, req.RoomID, userID)
	if err != nil {
		return domain.PhotoResponse{}, err
	}

	if req.CaptureMethod != domain.CaptureMethodCamera && req.CaptureMethod != domain.CaptureMethodUpload {
		return domain.PhotoResponse{}, domain.ErrInvalidCaptureMethod
	}

	contentType := req.Photo.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return domain.PhotoResponse{}, domain.ErrPhotoNotImage
	}

	if req.Photo.Size > domain.MaxPhotoSizeBytes {
		return domain.PhotoResponse{}, domain.ErrPhotoTooLarge
	}

	count, err := s.photoRepository.CountPhotosByRoom(ctx, req.RoomID)
	if err != nil {
		return domain.PhotoResponse{}, err
	}
	if count >= domain.MaxPhotosPerRoom {
		return domain.PhotoResponse{}, domain.ErrTooManyPhotos
	}

	photoID := uuid.New()
	objectKey := ObjectKey(
		inspectionID, req.RoomID, req.CaptureMethod,
		req.Photo.Filename, time.Now(), photoID.String()[:8],
	)

	if _, err := s.s3.UploadFileWithKey(objectKey, req.Photo, storage.AllowImage...); err != nil {
		return domain.PhotoResponse{}, err
	}

	publicURL := s.s3.GetPublicLinkKey(objectKey)

	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return domain.PhotoResponse{}, domain.ErrParseUUID
	}
	inspectionUUID, err := uuid.Parse(inspectionID)
	if err != nil {
		return domain.PhotoResponse{}, domain.ErrParseUUID
	}

	photo := &entities.Photo{
		ID:               photoID,
		InspectionID:     inspectionUUID,
		RoomID:           roomUUID,
		Filename:         sanitizeFilename(req.Photo.Filename),
		OriginalFilename: req.Photo.Filename,
		StoragePath:      objectKey,
		PublicURL:        publicURL,
		FileSize:         req.Photo.Size,
		MimeType:         contentType,
		CaptureMethod:    req.CaptureMethod,
		IsPrimary:        count == 0,
	}

	if err := s.photoRepository.CreatePhoto(ctx, photo); err != nil {
		// Compensating delete; the storage write already happened. A failure
		// here leaves an orphan object, so it is logged for offline cleanup.
		if delErr := s.s3.DeleteFile(objectKey); delErr != nil {
			fmt.Printf("Error deleting orphaned photo object %s: %v\n", objectKey, delErr)
		}
		return domain.PhotoResponse{}, err
	}

	if photo.IsPrimary {
		roomRecord.PhotoURL = publicURL
		if err := s.roomRepository.UpdateRoom(ctx, roomRecord); err != nil {
			fmt.Printf("Error updating room photo URL: %v\n", err)
		}
	}

	return toPhotoResponse(photo), nil
}

func (s *photoService) GetPhotos(ctx context.Context, inspectionID string, roomID string, userID string) ([]domain.PhotoResponse, error) {
	if _, err := s.checkOwnedRoom(ctx, inspectionID, roomID, userID); err != nil {
		return nil, err
	}

	photos, err := s.photoRepository.GetPhotosByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	var response []domain.PhotoResponse
	for _, photo := range photos {
		response = append(response, toPhotoResponse(photo))
	}
	return response, nil
}

func (s *photoService) SetPrimaryPhoto(ctx context.Context, inspectionID string, photoID string, userID string) error {
	photo, err := s.photoRepository.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	roomRecord, err := s.checkOwnedRoom(ctx, inspectionID, photo.RoomID.String(), userID)
	if err != nil {
		return err
	}

	// One primary per room: clear, then set.
	if err := s.photoRepository.ClearPrimaryForRoom(ctx, photo.RoomID.String()); err != nil {
		return err
	}
	if err := s.photoRepository.SetPrimary(ctx, photoID); err != nil {
		return err
	}

	roomRecord.PhotoURL = photo.PublicURL
	return s.roomRepository.UpdateRoom(ctx, roomRecord)
}

func (s *photoService) DeletePhoto(ctx context.Context, inspectionID string, photoID string, userID string) error {
	photo, err := s.photoRepository.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	roomRecord, err := s.checkOwnedRoom(ctx, inspectionID, photo.RoomID.String(), userID)
	if err != nil {
		return err
	}

	if photo.StoragePath != "" {
		if err := s.s3.DeleteFile(photo.StoragePath); err != nil {
			fmt.Printf("Error deleting photo object %s: %v\n", photo.StoragePath, err)
		}
	}

	if err := s.photoRepository.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	if photo.IsPrimary && roomRecord.PhotoURL == photo.PublicURL {
		roomRecord.PhotoURL = ""
		return s.roomRepository.UpdateRoom(ctx, roomRecord)
	}

	return nil
}

func toPhotoResponse(photo *entities.Photo) domain.PhotoResponse {
	return domain.PhotoResponse{
		ID:               photo.ID.String(),
		RoomID:           photo.RoomID.String(),
		Filename:         photo.Filename,
		OriginalFilename: photo.OriginalFilename,
		StoragePath:      photo.StoragePath,
		PublicURL:        photo.PublicURL,
		FileSize:         photo.FileSize,
		MimeType:         photo.MimeType,
		CaptureMethod:    photo.CaptureMethod,
		Description:      photo.Description,
		IsPrimary:        photo.IsPrimary,
		CreatedAt:        photo.CreatedAt,
	}
}
