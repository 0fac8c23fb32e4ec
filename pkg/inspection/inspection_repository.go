package inspection

import (
	"PropInspect-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InspectionRepository interface {
		CreateInspection(ctx context.Context, inspection *entities.Inspection) error
		GetInspectionByID(ctx context.Context, id string) (*entities.Inspection, error)
		GetInspectionWithRooms(ctx context.Context, id string) (*entities.Inspection, error)
		GetInspections(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Inspection, int64, error)
		UpdateInspection(ctx context.Context, inspection *entities.Inspection) error
		DeleteInspection(ctx context.Context, id string) error
		GetInspectionByShareToken(ctx context.Context, token string) (*entities.Inspection, error)
	}

	inspectionRepository struct {
		db *gorm.DB
	}
)

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) CreateInspection(ctx context.Context, inspection *entities.Inspection) error {
	return r.db.WithContext(ctx).Create(inspection).Error
}

func (r *inspectionRepository) GetInspectionByID(ctx context.Context, id string) (*entities.Inspection, error) {
	var inspection entities.Inspection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inspection).Error; err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) GetInspectionWithRooms(ctx context.Context, id string) (*entities.Inspection, error) {
	var inspection entities.Inspection
	if err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at asc")
		}).
		Preload("Rooms.Photos").
		Where("id = ?", id).
		First(&inspection).Error; err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) GetInspections(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Inspection, int64, error) {
	var inspections []*entities.Inspection
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.Inspection{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Rooms").Offset(offset).Limit(limit).
		Order("created_at desc").Find(&inspections).Error; err != nil {
		return nil, 0, err
	}

	return inspections, count, nil
}

func (r *inspectionRepository) UpdateInspection(ctx context.Context, inspection *entities.Inspection) error {
	return r.db.WithContext(ctx).Save(inspection).Error
}

func (r *inspectionRepository) DeleteInspection(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Inspection{}).Error
}

func (r *inspectionRepository) GetInspectionByShareToken(ctx context.Context, token string) (*entities.Inspection, error) {
	var inspection entities.Inspection
	if err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at asc")
		}).
		Preload("Rooms.Photos").
		Where("share_token = ?", token).
		First(&inspection).Error; err != nil {
		return nil, err
	}
	return &inspection, nil
}
