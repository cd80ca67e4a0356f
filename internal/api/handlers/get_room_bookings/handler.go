package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidQuery  = "некорректные параметры фильтрации"
	msgRoomNotFound  = "комната не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/bookings?startDate=...&endDate=...&status=...&includeRejected=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	actor := middleware.GetActor(r.Context())

	req, err := ParseQuery(actor, roomID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetRoomBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/bookings - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id}/bookings - Access denied: room_id=%d, actor_id=%d", roomID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /rooms/{id}/bookings - Failed to get bookings: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/bookings - Retrieved %d bookings: room_id=%d, actor_id=%d",
		result.Total, roomID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
