package models

import "time"

// HolidayType classifies a holiday
type HolidayType string

const (
	HolidayNational      HolidayType = "national"
	HolidayReligious     HolidayType = "religious"
	HolidayInternational HolidayType = "international"
	HolidaySpecial       HolidayType = "special"
	HolidayBank          HolidayType = "bank"
)

// HolidayTypes lists all valid holiday types in display order.
var HolidayTypes = []HolidayType{
	HolidayNational,
	HolidayReligious,
	HolidayInternational,
	HolidaySpecial,
	HolidayBank,
}

// Valid reports whether the holiday type is one of the allowed choices.
func (t HolidayType) Valid() bool {
	for _, v := range HolidayTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Holiday represents a school holiday. The (name, date) pair is unique.
type Holiday struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Date        time.Time   `json:"date" db:"date"`
	Type        HolidayType `json:"holidayType" db:"holiday_type"`
	Description string      `json:"description" db:"description"`
	IsRecurring bool        `json:"isRecurring" db:"is_recurring"`
	IsActive    bool        `json:"isActive" db:"is_active"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// IsUpcoming reports whether the holiday falls on or after the given day.
func (h *Holiday) IsUpcoming(today time.Time) bool {
	return !dateOnly(h.Date).Before(dateOnly(today))
}

// DaysUntil returns the whole days until the holiday. The second return is
// false when the holiday has already passed.
func (h *Holiday) DaysUntil(today time.Time) (int, bool) {
	if !h.IsUpcoming(today) {
		return 0, false
	}
	delta := dateOnly(h.Date).Sub(dateOnly(today))
	return int(delta.Hours() / 24), true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
