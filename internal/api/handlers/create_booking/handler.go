package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgRoomNotFound       = "комната не найдена"
	msgNotAuthorized      = "требуется аутентификация"
	msgInvalidSlot        = "время начала не принадлежит сетке слотов"
	msgRangeExceeded      = "длительность выходит за последний слот дня"
	msgWeekendBlocked     = "выбранный день закрыт для бронирования"
	msgPastSlot           = "выбранный слот уже прошел"
	msgSlotConflict       = "слот пересекается с существующим бронированием"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.GetActor(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrNotAuthorized):
			h.logger.Warn("POST /bookings - Not authorized: actor_id=%d", actor.ID)
			handlers.RespondUnauthorized(w, msgNotAuthorized)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: room_id=%d, date=%s", req.RoomID, req.StartDate)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: room_id=%d, start_time=%s", req.RoomID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrRangeExceeded):
			h.logger.Warn("POST /bookings - Range exceeded: room_id=%d, duration=%d", req.RoomID, req.DurationSlots)
			handlers.RespondBadRequest(w, msgRangeExceeded)

		case errors.Is(err, createBooking.ErrWeekendBlocked):
			h.logger.Warn("POST /bookings - Weekend blocked: room_id=%d, date=%s", req.RoomID, req.StartDate)
			handlers.RespondBadRequest(w, msgWeekendBlocked)

		case errors.Is(err, createBooking.ErrPastSlot):
			h.logger.Warn("POST /bookings - Past slot: room_id=%d, date=%s", req.RoomID, req.StartDate)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, actor_id=%d",
		result.ID, req.RoomID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
