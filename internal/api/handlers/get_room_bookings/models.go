package get_room_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// ParseQuery разбирает query-параметры фильтрации календаря комнаты:
// startDate, endDate (YYYY-MM-DD), status, includeRejected
func ParseQuery(actor domain.Actor, roomID int64, query url.Values) (*models.GetRoomBookingsRequest, error) {
	req := &models.GetRoomBookingsRequest{
		Actor:  actor,
		RoomID: roomID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeRejected"); raw != "" {
		includeRejected, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeRejected = includeRejected
	}

	return req, nil
}
