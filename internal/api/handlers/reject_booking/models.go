package reject_booking

// RejectBookingRequest HTTP request model
type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}
