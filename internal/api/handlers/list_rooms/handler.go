package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	result, err := h.service.List(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: actor_id=%d, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Retrieved %d rooms: actor_id=%d, role=%s", result.Total, actor.ID, actor.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
