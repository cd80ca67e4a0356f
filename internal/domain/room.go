package domain

import "time"

// RoomCategory represents the category of a bookable room
type RoomCategory string

const (
	CategoryConference  RoomCategory = "conference"
	CategoryComputerLab RoomCategory = "computer_lab"
	CategorySpecial     RoomCategory = "special"
	CategoryOther       RoomCategory = "other"
)

// Room represents a bookable meeting room.
// Rooms are created out-of-band (seed/admin action) and are immutable
// for the scheduling core's purposes.
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	Category  RoomCategory
	Amenities []string

	// AdminIDs пользователи, управляющие комнатой ("managed rooms")
	AdminIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsManagedBy returns true if userID is a room-scoped administrator of this room
func (r *Room) IsManagedBy(userID int64) bool {
	for _, id := range r.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidCategory reports whether c is one of the known room categories
func ValidCategory(c RoomCategory) bool {
	switch c {
	case CategoryConference, CategoryComputerLab, CategorySpecial, CategoryOther:
		return true
	default:
		return false
	}
}
