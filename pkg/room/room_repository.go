package room

import (
	"PropInspect-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RoomRepository interface {
		CreateRoom(ctx context.Context, room *entities.Room) error
		GetRoomByID(ctx context.Context, id string) (*entities.Room, error)
		GetRoomsByInspection(ctx context.Context, inspectionID string) ([]*entities.Room, error)
		GetSelectedRooms(ctx context.Context, inspectionID string) ([]*entities.Room, error)
		GetRoomByName(ctx context.Context, inspectionID string, roomName string) (*entities.Room, error)
		UpdateRoom(ctx context.Context, room *entities.Room) error
		DeleteRoom(ctx context.Context, id string) error
	}

	roomRepository struct {
		db *gorm.DB
	}
)

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) CreateRoom(ctx context.Context, room *entities.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetRoomByID(ctx context.Context, id string) (*entities.Room, error) {
	var room entities.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetRoomsByInspection(ctx context.Context, inspectionID string) ([]*entities.Room, error) {
	var rooms []*entities.Room
	if err := r.db.WithContext(ctx).
		Where("inspection_id = ?", inspectionID).
		Order("created_at asc").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) GetSelectedRooms(ctx context.Context, inspectionID string) ([]*entities.Room, error) {
	var rooms []*entities.Room
	if err := r.db.WithContext(ctx).
		Where("inspection_id = ? AND is_selected = ?", inspectionID, true).
		Order("created_at asc").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) GetRoomByName(ctx context.Context, inspectionID string, roomName string) (*entities.Room, error) {
	var room entities.Room
	if err := r.db.WithContext(ctx).
		Where("inspection_id = ? AND LOWER(room_name) = LOWER(?)", inspectionID, roomName).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) UpdateRoom(ctx context.Context, room *entities.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) DeleteRoom(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Room{}).Error
}
