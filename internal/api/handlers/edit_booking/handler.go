package edit_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	editBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/edit_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidSlot        = "время начала не принадлежит сетке слотов"
	msgRangeExceeded      = "длительность выходит за последний слот дня"
	msgWeekendBlocked     = "выбранный день закрыт для бронирования"
	msgPastSlot           = "выбранный слот уже прошел"
	msgSlotConflict       = "новое расписание пересекается с существующим бронированием"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.GetActor(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, editBooking.ErrNotAuthorized):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, actor_id=%d", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editBooking.ErrSlotConflict):
			h.logger.Warn("PUT /bookings/{id} - Slot conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, editBooking.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, editBooking.ErrRangeExceeded):
			handlers.RespondBadRequest(w, msgRangeExceeded)

		case errors.Is(err, editBooking.ErrWeekendBlocked):
			handlers.RespondBadRequest(w, msgWeekendBlocked)

		case errors.Is(err, editBooking.ErrPastSlot):
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to edit booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, actor_id=%d",
		bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
