package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeHolidayStore struct {
	holidays []*models.Holiday
	nextID   int64
}

func (f *fakeHolidayStore) Create(_ context.Context, h *models.Holiday) error {
	f.nextID++
	h.ID = f.nextID
	copied := *h
	f.holidays = append(f.holidays, &copied)
	return nil
}

func (f *fakeHolidayStore) GetByID(_ context.Context, id int64) (*models.Holiday, error) {
	for _, h := range f.holidays {
		if h.ID == id {
			copied := *h
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayStore) GetByYear(_ context.Context, year int) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range f.holidays {
		if h.Date.Year() == year && h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayStore) GetUpcoming(_ context.Context, from time.Time, limit int) ([]*models.Holiday, error) {
	// The repository casts the cutoff to a date, so the comparison here is
	// date against date, never date against a clock time.
	cutoff := dayOf(from)
	var out []*models.Holiday
	for _, h := range f.holidays {
		if h.IsActive && !dayOf(h.Date).Before(cutoff) {
			out = append(out, h)
		}
	}
	// fake data is inserted in date order, so a plain cap is enough
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (f *fakeHolidayStore) ExistsByNameAndDate(_ context.Context, name string, date time.Time, excludeID int64) (bool, error) {
	for _, h := range f.holidays {
		if h.ID != excludeID && h.Name == name && h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayStore) Update(_ context.Context, updated *models.Holiday) error {
	for i, h := range f.holidays {
		if h.ID == updated.ID {
			copied := *updated
			f.holidays[i] = &copied
			return nil
		}
	}
	return apperrors.ErrHolidayNotFound
}

func (f *fakeHolidayStore) Delete(_ context.Context, id int64) error {
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrHolidayNotFound
}

func newHolidayServiceAt(store *fakeHolidayStore, now time.Time) *HolidayService {
	svc := NewHolidayService(store)
	svc.now = func() time.Time { return now }
	return svc
}

func seedHoliday(t *testing.T, svc *HolidayService, name, date, holidayType string) {
	t.Helper()
	if _, err := svc.Create(context.Background(), dto.CreateHolidayRequest{
		Name:        name,
		Date:        date,
		HolidayType: holidayType,
	}); err != nil {
		t.Fatalf("seeding holiday %q: %v", name, err)
	}
}

func TestHolidayServiceCreateDuplicateNameAndDate(t *testing.T) {
	svc := newHolidayServiceAt(&fakeHolidayStore{}, time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	seedHoliday(t, svc, "Founders Day", "2026-10-10", "special")

	// Same name and date is a conflict
	_, err := svc.Create(ctx, dto.CreateHolidayRequest{
		Name:        "Founders Day",
		Date:        "2026-10-10",
		HolidayType: "special",
	})
	if !errors.Is(err, apperrors.ErrHolidayAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want ErrHolidayAlreadyExists", err)
	}

	// Same name on a different date is fine
	if _, err := svc.Create(ctx, dto.CreateHolidayRequest{
		Name:        "Founders Day",
		Date:        "2027-10-10",
		HolidayType: "special",
	}); err != nil {
		t.Fatalf("same name, different date should succeed: %v", err)
	}

	// A different holiday on the same date is fine too
	if _, err := svc.Create(ctx, dto.CreateHolidayRequest{
		Name:        "Sports Day",
		Date:        "2026-10-10",
		HolidayType: "special",
	}); err != nil {
		t.Fatalf("different name, same date should succeed: %v", err)
	}
}

func TestHolidayServiceCreateValidation(t *testing.T) {
	svc := newHolidayServiceAt(&fakeHolidayStore{}, time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		req  dto.CreateHolidayRequest
	}{
		{name: "bad type", req: dto.CreateHolidayRequest{Name: "X", Date: "2026-10-10", HolidayType: "vacation"}},
		{name: "bad date", req: dto.CreateHolidayRequest{Name: "X", Date: "10/10/2026", HolidayType: "national"}},
		{name: "empty name", req: dto.CreateHolidayRequest{Name: "", Date: "2026-10-10", HolidayType: "national"}},
		{name: "name too long", req: dto.CreateHolidayRequest{Name: strings.Repeat("x", 201), Date: "2026-10-10", HolidayType: "national"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestHolidayServiceCalendarYearFallback(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	svc := newHolidayServiceAt(&fakeHolidayStore{}, now)

	seedHoliday(t, svc, "New Year's Day", "2026-01-01", "national")

	for _, yearParam := range []string{"", "not-a-year", "0"} {
		calendar, err := svc.ListCalendar(context.Background(), yearParam)
		if err != nil {
			t.Fatalf("ListCalendar(%q) error = %v", yearParam, err)
		}
		if calendar.CurrentYear != 2026 {
			t.Errorf("ListCalendar(%q).CurrentYear = %d, want 2026", yearParam, calendar.CurrentYear)
		}
	}

	calendar, err := svc.ListCalendar(context.Background(), "2027")
	if err != nil {
		t.Fatalf("ListCalendar(2027) error = %v", err)
	}
	if calendar.CurrentYear != 2027 {
		t.Errorf("explicit year not honored: got %d", calendar.CurrentYear)
	}
	if calendar.TotalHolidays != 0 {
		t.Errorf("2027 has no holidays, got %d", calendar.TotalHolidays)
	}
}

func TestHolidayServiceCalendarGroupingAndCounts(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	svc := newHolidayServiceAt(&fakeHolidayStore{}, now)
	ctx := context.Background()

	seedHoliday(t, svc, "New Year's Day", "2026-01-01", "national")
	seedHoliday(t, svc, "Epiphany", "2026-01-06", "religious")
	seedHoliday(t, svc, "Labour Day", "2026-05-01", "national")

	calendar, err := svc.ListCalendar(ctx, "2026")
	if err != nil {
		t.Fatalf("ListCalendar() error = %v", err)
	}

	if calendar.TotalHolidays != 3 {
		t.Fatalf("TotalHolidays = %d, want 3", calendar.TotalHolidays)
	}
	if got := len(calendar.HolidaysByMonth["January"]); got != 2 {
		t.Errorf("January group size = %d, want 2", got)
	}
	if got := len(calendar.HolidaysByMonth["May"]); got != 1 {
		t.Errorf("May group size = %d, want 1", got)
	}
	if calendar.TypeCounts["national"] != 2 || calendar.TypeCounts["religious"] != 1 {
		t.Errorf("TypeCounts = %v, want national:2 religious:1", calendar.TypeCounts)
	}

	// January holidays have passed by March; May is still upcoming
	var upcomingNames []string
	for _, h := range calendar.UpcomingHolidays {
		upcomingNames = append(upcomingNames, h.Name)
	}
	if len(upcomingNames) != 1 || upcomingNames[0] != "Labour Day" {
		t.Errorf("UpcomingHolidays = %v, want only Labour Day", upcomingNames)
	}
}

func TestHolidayServiceUpcomingCap(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := newHolidayServiceAt(&fakeHolidayStore{}, now)

	dates := []string{"2026-02-01", "2026-03-01", "2026-04-01", "2026-05-01", "2026-06-01", "2026-07-01", "2026-08-01"}
	for i, d := range dates {
		seedHoliday(t, svc, "Holiday "+string(rune('A'+i)), d, "special")
	}

	calendar, err := svc.ListCalendar(context.Background(), "2026")
	if err != nil {
		t.Fatalf("ListCalendar() error = %v", err)
	}

	if got := len(calendar.UpcomingHolidays); got != upcomingHolidayLimit {
		t.Fatalf("len(UpcomingHolidays) = %d, want %d", got, upcomingHolidayLimit)
	}
	// Soonest first
	if calendar.UpcomingHolidays[0].Date != "2026-02-01" {
		t.Errorf("first upcoming = %s, want 2026-02-01", calendar.UpcomingHolidays[0].Date)
	}
}

func TestHolidayServiceUpcomingIncludesToday(t *testing.T) {
	// A mid-day clock must not push a holiday dated today out of the
	// upcoming section; only dates strictly before today are excluded.
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	svc := newHolidayServiceAt(&fakeHolidayStore{}, now)

	seedHoliday(t, svc, "Founders Day", "2026-09-01", "special")
	seedHoliday(t, svc, "Yesterday Day", "2026-08-31", "special")

	calendar, err := svc.ListCalendar(context.Background(), "2026")
	if err != nil {
		t.Fatalf("ListCalendar() error = %v", err)
	}

	if len(calendar.UpcomingHolidays) != 1 {
		t.Fatalf("len(UpcomingHolidays) = %d, want 1", len(calendar.UpcomingHolidays))
	}
	today := calendar.UpcomingHolidays[0]
	if today.Name != "Founders Day" {
		t.Errorf("upcoming holiday = %s, want Founders Day", today.Name)
	}
	if !today.IsUpcoming {
		t.Error("a holiday dated today is upcoming")
	}
	if today.DaysUntil == nil || *today.DaysUntil != 0 {
		t.Errorf("DaysUntil = %v, want 0", today.DaysUntil)
	}
}

func TestHolidayServiceInactiveExcluded(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := newHolidayServiceAt(&fakeHolidayStore{}, now)
	ctx := context.Background()

	inactive := false
	if _, err := svc.Create(ctx, dto.CreateHolidayRequest{
		Name:        "Cancelled Day",
		Date:        "2026-06-01",
		HolidayType: "special",
		IsActive:    &inactive,
	}); err != nil {
		t.Fatalf("create error = %v", err)
	}

	calendar, err := svc.ListCalendar(ctx, "2026")
	if err != nil {
		t.Fatalf("ListCalendar() error = %v", err)
	}
	if calendar.TotalHolidays != 0 {
		t.Errorf("inactive holidays must not appear, got %d", calendar.TotalHolidays)
	}
}

func TestHolidayServiceUpdateNotFound(t *testing.T) {
	svc := newHolidayServiceAt(&fakeHolidayStore{}, time.Now())

	_, err := svc.Update(context.Background(), 42, dto.UpdateHolidayRequest{
		Name:        "Ghost Day",
		Date:        "2026-06-01",
		HolidayType: "special",
	})
	if !errors.Is(err, apperrors.ErrHolidayNotFound) {
		t.Fatalf("error = %v, want ErrHolidayNotFound", err)
	}

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, apperrors.ErrHolidayNotFound) {
		t.Fatalf("delete error = %v, want ErrHolidayNotFound", err)
	}
}
