package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessUploadPhoto = "photo uploaded successfully"
	MessageSuccessGetPhotos   = "photos retrieved successfully"
	MessageSuccessSetPrimary  = "primary photo updated successfully"
	MessageSuccessDeletePhoto = "photo deleted successfully"

	MessageFailedUploadPhoto = "failed to upload photo"
	MessageFailedGetPhotos   = "failed to retrieve photos"
	MessageFailedSetPrimary  = "failed to update primary photo"
	MessageFailedDeletePhoto = "failed to delete photo"

	ErrPhotoNotFound        = errors.New("photo not found")
	ErrInvalidCaptureMethod = errors.New("capture method must be camera or upload")
	ErrPhotoNotImage        = errors.New("file must be an image")
	ErrPhotoTooLarge        = errors.New("photo exceeds the maximum size of 10 MB")
	ErrTooManyPhotos        = errors.New("maximum number of photos reached for this room")
)

const (
	CaptureMethodCamera = "camera"
	CaptureMethodUpload = "upload"

	MaxPhotoSizeBytes = 10 * 1024 * 1024
	MaxPhotosPerRoom  = 10
)

type (
	UploadPhotoRequest struct {
		RoomID        string                `json:"room_id" form:"room_id" validate:"required,uuid"`
		CaptureMethod string                `json:"capture_method" form:"capture_method" validate:"required,oneof=camera upload"`
		Photo         *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	PhotoResponse struct {
		ID               string    `json:"id"`
		RoomID           string    `json:"room_id"`
		Filename         string    `json:"filename"`
		OriginalFilename string    `json:"original_filename"`
		StoragePath      string    `json:"storage_path"`
		PublicURL        string    `json:"public_url"`
		FileSize         int64     `json:"file_size"`
		MimeType         string    `json:"mime_type"`
		CaptureMethod    string    `json:"capture_method"`
		Description      string    `json:"description,omitempty"`
		IsPrimary        bool      `json:"is_primary"`
		CreatedAt        time.Time `json:"created_at"`
	}
)
