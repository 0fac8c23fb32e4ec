package room

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"
	"PropInspect-Backend/pkg/inspection"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RoomService interface {
		GetRooms(ctx context.Context, inspectionID string, userID string) ([]domain.RoomResponse, error)
		ToggleStandardRoom(ctx context.Context, inspectionID string, req domain.ToggleRoomRequest, userID string) (domain.RoomResponse, error)
		AddCustomRoom(ctx context.Context, inspectionID string, req domain.AddCustomRoomRequest, userID string) (domain.RoomResponse, error)
		RemoveRoom(ctx context.Context, inspectionID string, roomID string, userID string) error
	}

	roomService struct {
		roomRepository       RoomRepository
		inspectionRepository inspection.InspectionRepository
	}
)

func NewRoomService(roomRepository RoomRepository, inspectionRepository inspection.InspectionRepository) RoomService {
	return &roomService{
		roomRepository:       roomRepository,
		inspectionRepository: inspectionRepository,
	}
}

func (s *roomService) checkInspectionOwner(ctx context.Context, inspectionID string, userID string) (*entities.Inspection, error) {
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

	return inspectionRecord, nil
}

func (s *roomService) GetRooms(ctx context.Context, inspectionID string, userID string) ([]domain.RoomResponse, error) {
	if _, err := s.checkInspectionOwner(ctx, inspectionID, userID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepository.GetRoomsByInspection(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	var response []domain.RoomResponse
	for _, room := range rooms {
		response = append(response, toRoomResponse(room))
	}
	return response, nil
}

func isStandardRoomName(name string) bool {
	for _, standard := range domain.StandardRoomCatalog {
		if strings.EqualFold(standard, name) {
			return true
		}
	}
	return false
}

// ToggleStandardRoom flips is_selected on an existing room row, or inserts a
// selected row when the name has never been toggled for this inspection. The
// row is reused across toggles rather than recreated.
func (s *roomService) ToggleStandardRoom(ctx context.Context, inspectionID string, req domain.ToggleRoomRequest, userID string) (domain.RoomResponse, error) {
	if _, err := s.checkInspectionOwner(ctx, inspectionID, userID); err != nil {
		return domain.RoomResponse{}, err
	}

	if !isStandardRoomName(req.RoomName) {
		return domain.RoomResponse{}, domain.ErrUnknownStandardRoom
	}

	existing, err := s.roomRepository.GetRoomByName(ctx, inspectionID, req.RoomName)
	if err == nil {
		existing.IsSelected = !existing.IsSelected
		if err := s.roomRepository.UpdateRoom(ctx, existing); err != nil {
			return domain.RoomResponse{}, err
		}
		return toRoomResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RoomResponse{}, err
	}

	inspectionUUID, err := uuid.Parse(inspectionID)
	if err != nil {
		return domain.RoomResponse{}, domain.ErrParseUUID
	}

	room := &entities.Room{
		ID:           uuid.New(),
		InspectionID: inspectionUUID,
		RoomName:     req.RoomName,
		RoomType:     domain.RoomTypeStandard,
		IsSelected:   true,
	}

	if err := s.roomRepository.CreateRoom(ctx, room); err != nil {
		return domain.RoomResponse{}, err
	}

	return toRoomResponse(room), nil
}

func (s *roomService) AddCustomRoom(ctx context.Context, inspectionID string, req domain.AddCustomRoomRequest, userID string) (domain.RoomResponse, error) {
	if _, err := s.checkInspectionOwner(ctx, inspectionID, userID); err != nil {
		return domain.RoomResponse{}, err
	}

	roomName := strings.TrimSpace(req.RoomName)
	if roomName == "" {
		return domain.RoomResponse{}, domain.ErrRoomNameRequired
	}

	// Duplicate names are rejected case-insensitively across the whole room
	// set, standard and custom alike.
	if _, err := s.roomRepository.GetRoomByName(ctx, inspectionID, roomName); err == nil {
		return domain.RoomResponse{}, domain.ErrRoomAlreadyAdded
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RoomResponse{}, err
	}

	inspectionUUID, err := uuid.Parse(inspectionID)
	if err != nil {
		return domain.RoomResponse{}, domain.ErrParseUUID
	}

	room := &entities.Room{
		ID:           uuid.New(),
		InspectionID: inspectionUUID,
		RoomName:     roomName,
		RoomType:     domain.RoomTypeCustom,
		IsSelected:   true,
	}

	if err := s.roomRepository.CreateRoom(ctx, room); err != nil {
		return domain.RoomResponse{}, err
	}

	return toRoomResponse(room), nil
}

func (s *roomService) RemoveRoom(ctx context.Context, inspectionID string, roomID string, userID string) error {
	if _, err := s.checkInspectionOwner(ctx, inspectionID, userID); err != nil {
		return err
	}

	room, err := s.roomRepository.GetRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoomNotFound
		}
		return err
	}

	if room.InspectionID.String() != inspectionID {
		return domain.ErrRoomNotFound
	}

	return s.roomRepository.DeleteRoom(ctx, roomID)
}

func toRoomResponse(room *entities.Room) domain.RoomResponse {
	return domain.RoomResponse{
		ID:          room.ID.String(),
		RoomName:    room.RoomName,
		RoomType:    room.RoomType,
		IsSelected:  room.IsSelected,
		IsCompleted: room.IsCompleted,
		PhotoURL:    room.PhotoURL,
		Comments:    room.Comments,
		AIAnalysis:  room.AIAnalysis,
		CompletedAt: room.CompletedAt,
		CreatedAt:   room.CreatedAt,
	}
}
