package notifier

// EventType тип события жизненного цикла бронирования
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingApproved  EventType = "booking_approved"
	EventBookingRejected  EventType = "booking_rejected"
	EventBookingCancelled EventType = "booking_cancelled"
)

// Event уведомление о событии жизненного цикла бронирования
type Event struct {
	Type           EventType `json:"type"`
	BookingID      int64     `json:"bookingId"`
	RoomID         int64     `json:"roomId"`
	RoomName       string    `json:"roomName,omitempty"`
	OrganizerEmail string    `json:"organizerEmail"`
	Title          string    `json:"title"`
	StartDate      string    `json:"startDate"` // YYYY-MM-DD
	EndDate        string    `json:"endDate"`   // YYYY-MM-DD
	StartTime      string    `json:"startTime,omitempty"`
	Reason         *string   `json:"reason,omitempty"`
}
