package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTitleLength        = 200
	MaxDescriptionLength  = 1000
	MaxRejectReasonLength = 500
	MaxMultiDaySpanDays   = 31 // месяц - разумный потолок для multi_day диапазона
	MinAttendees          = 1
)

// ActiveStatuses статусы, удерживающие слот
// Используются при фильтрации для проверки конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// ValidStatus reports whether s is one of the known approval statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// ValidKind reports whether k is one of the known booking kinds
func ValidKind(k BookingKind) bool {
	switch k {
	case KindHourly, KindFullDay, KindMultiDay, KindWeekly:
		return true
	default:
		return false
	}
}
