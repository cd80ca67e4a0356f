package check_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ConflictResponse краткая сводка по конфликтующему бронированию
type ConflictResponse struct {
	ID            int64  `json:"id"`
	Kind          string `json:"kind"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime,omitempty"`
	DurationSlots int    `json:"durationSlots,omitempty"`
	Status        string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Conflict  *ConflictResponse `json:"conflict,omitempty"`
}

// ParseQuery разбирает query-параметры кандидата:
// kind, startDate, endDate, startTime, durationSlots
func ParseQuery(roomID int64, query url.Values) (*checkAvailability.Request, error) {
	req := &checkAvailability.Request{
		RoomID: roomID,
		Kind:   domain.BookingKind(query.Get("kind")),
	}

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		return nil, err
	}
	req.StartDate = startDate

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = endDate
	}

	if raw := query.Get("startTime"); raw != "" {
		startTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	if raw := query.Get("durationSlots"); raw != "" {
		durationSlots, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.DurationSlots = durationSlots
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{Available: resp.Available}
	if resp.Conflict != nil {
		out.Conflict = &ConflictResponse{
			ID:            resp.Conflict.ID,
			Kind:          resp.Conflict.Kind,
			StartDate:     resp.Conflict.StartDate.Format(domain.DateFormat),
			EndDate:       resp.Conflict.EndDate.Format(domain.DateFormat),
			StartTime:     resp.Conflict.StartTime.String(),
			DurationSlots: resp.Conflict.DurationSlots,
			Status:        resp.Conflict.Status,
		}
	}
	return out
}
