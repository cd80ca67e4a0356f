package get_available_slots

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_slots"
)

// SlotResponse доступность одного слота сетки
type SlotResponse struct {
	Index     int    `json:"index"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	RoomID   int64          `json:"roomId"`
	Date     string         `json:"date"`
	Bookable bool           `json:"bookable"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Index:     s.Index,
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		RoomID:   resp.RoomID,
		Date:     resp.Date.Format(domain.DateFormat),
		Bookable: resp.Bookable,
		Slots:    slots,
	}
}
