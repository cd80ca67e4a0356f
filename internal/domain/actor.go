package domain

// Role represents the access role of an actor
type Role string

const (
	RoleAnonymous   Role = "anonymous"
	RoleUser        Role = "user"
	RoleRoomAdmin   Role = "room_admin"
	RoleGlobalAdmin Role = "global_admin"
)

// Actor описывает аутентифицированного (или анонимного) пользователя запроса.
// Передается явно в каждый вызов lifecycle/filter операций - никакого
// глобального session state внутри ядра.
type Actor struct {
	ID           int64
	Email        string
	Name         string
	Role         Role
	ManagedRooms []int64

	// SelectedRoomID контекст "одной переговорки": если задан, видимость
	// сужается до этой комнаты
	SelectedRoomID *int64
}

// IsAuthenticated reports whether the actor is a logged-in user
func (a *Actor) IsAuthenticated() bool {
	return a.Role != RoleAnonymous && a.ID > 0
}

// IsGlobalAdmin returns true for global administrators
func (a *Actor) IsGlobalAdmin() bool {
	return a.Role == RoleGlobalAdmin
}

// IsRoomAdmin returns true for room-scoped administrators
func (a *Actor) IsRoomAdmin() bool {
	return a.Role == RoleRoomAdmin
}

// CanManage reports whether the actor may approve/reject/edit/cancel bookings
// of room roomID: глобальный админ или комнатный админ, управляющий комнатой
func (a *Actor) CanManage(roomID int64) bool {
	if a.IsGlobalAdmin() {
		return true
	}
	if !a.IsRoomAdmin() {
		return false
	}
	for _, id := range a.ManagedRooms {
		if id == roomID {
			return true
		}
	}
	return false
}

// Owns reports whether the actor is the organizer of the booking
func (a *Actor) Owns(b *Booking) bool {
	return a.Email != "" && a.Email == b.OrganizerEmail
}

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleAnonymous, RoleUser, RoleRoomAdmin, RoleGlobalAdmin:
		return true
	default:
		return false
	}
}
