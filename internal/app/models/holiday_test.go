package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHolidayIsUpcoming(t *testing.T) {
	today := date(2026, time.September, 1)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "future holiday", date: date(2026, time.December, 25), want: true},
		{name: "today counts as upcoming", date: date(2026, time.September, 1), want: true},
		{name: "past holiday", date: date(2026, time.January, 1), want: false},
		{name: "same day later clock time", date: time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Holiday{Name: "test", Date: tt.date}
			if got := h.IsUpcoming(today); got != tt.want {
				t.Errorf("IsUpcoming() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHolidayDaysUntil(t *testing.T) {
	today := date(2026, time.September, 1)

	tests := []struct {
		name     string
		date     time.Time
		wantDays int
		wantOK   bool
	}{
		{name: "today", date: date(2026, time.September, 1), wantDays: 0, wantOK: true},
		{name: "tomorrow", date: date(2026, time.September, 2), wantDays: 1, wantOK: true},
		{name: "end of year", date: date(2026, time.December, 25), wantDays: 115, wantOK: true},
		{name: "passed", date: date(2026, time.August, 31), wantDays: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Holiday{Name: "test", Date: tt.date}
			days, ok := h.DaysUntil(today)
			if days != tt.wantDays || ok != tt.wantOK {
				t.Errorf("DaysUntil() = (%d, %v), want (%d, %v)", days, ok, tt.wantDays, tt.wantOK)
			}
		})
	}
}

func TestHolidayTypeValid(t *testing.T) {
	for _, ht := range HolidayTypes {
		if !ht.Valid() {
			t.Errorf("HolidayType %q should be valid", ht)
		}
	}

	if HolidayType("vacation").Valid() {
		t.Error("HolidayType \"vacation\" should not be valid")
	}
	if HolidayType("").Valid() {
		t.Error("empty HolidayType should not be valid")
	}
}
