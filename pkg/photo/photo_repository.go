package photo

import (
	"PropInspect-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PhotoRepository interface {
		CreatePhoto(ctx context.Context, photo *entities.Photo) error
		UpdatePhoto(ctx context.Context, photo *entities.Photo) error
		GetPhotoByID(ctx context.Context, id string) (*entities.Photo, error)
		GetPhotosByRoom(ctx context.Context, roomID string) ([]*entities.Photo, error)
		CountPhotosByRoom(ctx context.Context, roomID string) (int64, error)
		ClearPrimaryForRoom(ctx context.Context, roomID string) error
		SetPrimary(ctx context.Context, id string) error
		DeletePhoto(ctx context.Context, id string) error
	}

	photoRepository struct {
		db *gorm.DB
	}
)

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) CreatePhoto(ctx context.Context, photo *entities.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) UpdatePhoto(ctx context.Context, photo *entities.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *photoRepository) GetPhotoByID(ctx context.Context, id string) (*entities.Photo, error) {
	var photo entities.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) GetPhotosByRoom(ctx context.Context, roomID string) ([]*entities.Photo, error) {
	var photos []*entities.Photo
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at asc").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) CountPhotosByRoom(ctx context.Context, roomID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Photo{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *photoRepository) ClearPrimaryForRoom(ctx context.Context, roomID string) error {
	return r.db.WithContext(ctx).Model(&entities.Photo{}).
		Where("room_id = ?", roomID).
		Update("is_primary", false).Error
}

func (r *photoRepository) SetPrimary(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Photo{}).
		Where("id = ?", id).
		Update("is_primary", true).Error
}

func (r *photoRepository) DeletePhoto(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Photo{}).Error
}
