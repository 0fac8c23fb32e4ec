package wizard

import (
	"PropInspect-Backend/domain"
	"PropInspect-Backend/entities"
	"PropInspect-Backend/pkg/inspection"
	"PropInspect-Backend/pkg/room"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// WizardService drives the one-room-at-a-time capture flow. The state machine
// lives here, behind repositories, so any presentation layer gets the same
// transition semantics: every navigation persists the current room first, and
// a persistence failure aborts the navigation entirely.
type (
	WizardService interface {
		GetState(ctx context.Context, inspectionID string, userID string) (domain.WizardStateResponse, error)
		SaveRoom(ctx context.Context, inspectionID string, roomID string, req domain.SaveRoomRequest, userID string) (domain.SaveRoomResponse, error)
	}

	wizardService struct {
		roomRepository       room.RoomRepository
		inspectionRepository inspection.InspectionRepository
	}
)

func NewWizardService(roomRepository room.RoomRepository, inspectionRepository inspection.InspectionRepository) WizardService {
	return &wizardService{
		roomRepository:       roomRepository,
		inspectionRepository: inspectionRepository,
	}
}

func (s *wizardService) getOwnedInspection(ctx context.Context, inspectionID string, userID string) (*entities.Inspection, error) {
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

func (s *wizardService) GetState(ctx context.Context, inspectionID string, userID string) (domain.WizardStateResponse, error) {
	inspectionRecord, err := s.getOwnedInspection(ctx, inspectionID, userID)
	if err != nil {
		return domain.WizardStateResponse{}, err
	}

	rooms, err := s.roomRepository.GetSelectedRooms(ctx, inspectionID)
	if err != nil {
		return domain.WizardStateResponse{}, err
	}

	state := domain.WizardStateResponse{
		InspectionID: inspectionID,
		Status:       inspectionRecord.Status,
		Completed:    inspectionRecord.Status == domain.InspectionStatusCompleted,
	}

	for _, r := range rooms {
		state.Rooms = append(state.Rooms, toWizardRoom(r))
		if r.IsCompleted {
			state.RoomsCompleted++
		}
	}

	return state, nil
}

func (s *wizardService) SaveRoom(ctx context.Context, inspectionID string, roomID string, req domain.SaveRoomRequest, userID string) (domain.SaveRoomResponse, error) {
	inspectionRecord, err := s.getOwnedInspection(ctx, inspectionID, userID)
	if err != nil {
		return domain.SaveRoomResponse{}, err
	}

	if inspectionRecord.Status == domain.InspectionStatusCompleted {
		return domain.SaveRoomResponse{}, domain.ErrWizardCompleted
	}
	if inspectionRecord.Status == domain.InspectionStatusCancelled {
		return domain.SaveRoomResponse{}, domain.ErrInspectionCancelled
	}

	rooms, err := s.roomRepository.GetSelectedRooms(ctx, inspectionID)
	if err != nil {
		return domain.SaveRoomResponse{}, err
	}
	if len(rooms) == 0 {
		return domain.SaveRoomResponse{}, domain.ErrNoRoomsSelected
	}

	currentIndex := -1
	for i, r := range rooms {
		if r.ID.String() == roomID {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return domain.SaveRoomResponse{}, domain.ErrRoomNotInWizard
	}

	// Navigation is validated before the room is persisted; a rejected
	// request leaves the room and inspection untouched.
	switch req.Direction {
	case domain.NavigateNext, domain.NavigatePrevious, domain.NavigateStay:
	case domain.NavigateJump:
		if req.TargetIndex < 0 || req.TargetIndex >= len(rooms) {
			return domain.SaveRoomResponse{}, domain.ErrInvalidRoomIndex
		}
	default:
		return domain.SaveRoomResponse{}, domain.ErrInvalidNavigation
	}

	current := rooms[currentIndex]
	current.PhotoURL = req.PhotoURL
	current.Comments = req.Comments
	current.AIAnalysis = req.AIAnalysis

	// A room counts as completed exactly when both a photo and an analysis
	// are present at the moment of this save.
	wasCompleted := current.IsCompleted
	current.IsCompleted = current.PhotoURL != "" && current.AIAnalysis != ""
	if current.IsCompleted && !wasCompleted {
		now := time.Now().UTC()
		current.CompletedAt = &now
	}
	if !current.IsCompleted {
		current.CompletedAt = nil
	}

	if err := s.roomRepository.UpdateRoom(ctx, current); err != nil {
		return domain.SaveRoomResponse{}, err
	}

	// First saved room moves the inspection out of pending.
	if inspectionRecord.Status == domain.InspectionStatusPending {
		inspectionRecord.Status = domain.InspectionStatusInProgress
		if err := s.inspectionRepository.UpdateInspection(ctx, inspectionRecord); err != nil {
			return domain.SaveRoomResponse{}, err
		}
	}

	response := domain.SaveRoomResponse{
		Room:         toWizardRoom(current),
		CurrentIndex: currentIndex,
	}

	switch req.Direction {
	case domain.NavigateNext:
		if currentIndex == len(rooms)-1 {
			inspectionRecord.Status = domain.InspectionStatusCompleted
			if err := s.inspectionRepository.UpdateInspection(ctx, inspectionRecord); err != nil {
				return domain.SaveRoomResponse{}, err
			}
			response.Completed = true
			response.ReportPath = fmt.Sprintf("/inspections/%s/report", inspectionID)
			return response, nil
		}
		response.CurrentIndex = currentIndex + 1
		next := toWizardRoom(rooms[currentIndex+1])
		response.NextRoom = &next
	case domain.NavigatePrevious:
		if currentIndex > 0 {
			response.CurrentIndex = currentIndex - 1
			prev := toWizardRoom(rooms[currentIndex-1])
			response.NextRoom = &prev
		}
	case domain.NavigateJump:
		response.CurrentIndex = req.TargetIndex
		target := toWizardRoom(rooms[req.TargetIndex])
		response.NextRoom = &target
	case domain.NavigateStay:
		// Save without moving.
	}

	return response, nil
}

func toWizardRoom(r *entities.Room) domain.WizardRoom {
	return domain.WizardRoom{
		RoomID:      r.ID.String(),
		RoomName:    r.RoomName,
		RoomType:    r.RoomType,
		IsCompleted: r.IsCompleted,
		PhotoURL:    r.PhotoURL,
		Comments:    r.Comments,
		AIAnalysis:  r.AIAnalysis,
	}
}
