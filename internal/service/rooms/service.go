package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// Service сервис реестра комнат: видимость, просмотр, создание
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(repository RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: repository,
		logger:   logger,
	}
}

// List возвращает комнаты, видимые актору
//
// Правила видимости, в порядке приоритета:
//  1. выбран контекст одной переговорки - только она;
//  2. анонимный актор - все комнаты (read-only discovery);
//  3. глобальный админ - все комнаты;
//  4. комнатный админ - только управляемые комнаты;
//  5. обычный пользователь - все комнаты (бронировать можно любую,
//     права управления с правами бронирования не совпадают)
func (s *Service) List(ctx context.Context, actor domain.Actor) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms for actor=%d, role=%s", actor.ID, actor.Role)

	if actor.SelectedRoomID != nil {
		room, err := s.getRoom(ctx, *actor.SelectedRoomID, "List")
		if err != nil {
			if errors.Is(err, ErrRoomNotFound) {
				return models.FromDomainRoomList(nil), nil
			}
			return nil, err
		}
		return models.FromDomainRoomList([]*domain.Room{room}), nil
	}

	all, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if actor.IsRoomAdmin() {
		managed := make([]*domain.Room, 0, len(actor.ManagedRooms))
		for _, room := range all {
			if actor.CanManage(room.ID) {
				managed = append(managed, room)
			}
		}
		s.logger.Info("List: returning %d managed rooms for actor=%d", len(managed), actor.ID)
		return models.FromDomainRoomList(managed), nil
	}

	s.logger.Info("List: returning %d rooms for actor=%d", len(all), actor.ID)
	return models.FromDomainRoomList(all), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// Create создает комнату (out-of-band seed действие)
// Доступно только глобальным администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room %q by actor=%d", req.Name, req.Actor.ID)

	if !req.Actor.IsGlobalAdmin() {
		s.logger.Warn("Create: access denied for actor=%d, role=%s", req.Actor.ID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	category := domain.RoomCategory(req.Category)
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Category:  category,
		Amenities: req.Amenities,
		AdminIDs:  req.AdminIDs,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", room.ID)
	return models.FromDomainRoom(room), nil
}

// getRoom читает комнату, транслируя not found в сервисную ошибку
func (s *Service) getRoom(ctx context.Context, id int64, op string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}
