package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events []*models.Event
	nextID int64
}

func (f *fakeEventStore) Create(_ context.Context, e *models.Event) error {
	f.nextID++
	e.ID = f.nextID
	copied := *e
	f.events = append(f.events, &copied)
	return nil
}

func (f *fakeEventStore) GetAll(_ context.Context) ([]*models.Event, error) {
	return f.events, nil
}

func (f *fakeEventStore) GetUpcoming(_ context.Context, from time.Time) ([]*models.Event, error) {
	// The repository casts the cutoff to a date; compare day against day here
	cutoff := dayOf(from)
	var out []*models.Event
	for _, e := range f.events {
		if !dayOf(e.Date).Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

func newEventServiceAt(now time.Time) *EventService {
	svc := NewEventService(&fakeEventStore{})
	svc.now = func() time.Time { return now }
	return svc
}

func seedEvent(t *testing.T, svc *EventService, title, date string) {
	t.Helper()
	if _, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:       title,
		Description: "campus event",
		Date:        date,
		Location:    "Main Hall",
	}); err != nil {
		t.Fatalf("seeding event %q: %v", title, err)
	}
}

func TestEventServiceUpcomingIncludesToday(t *testing.T) {
	// The clock time must not push an event dated today out of the upcoming
	// list; only dates strictly before today are excluded.
	svc := newEventServiceAt(time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC))
	ctx := context.Background()

	seedEvent(t, svc, "Orientation", "2026-09-01")
	seedEvent(t, svc, "Summer Fair", "2026-08-15")
	seedEvent(t, svc, "Science Week", "2026-10-05")

	upcoming, err := svc.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("ListUpcoming() error = %v", err)
	}

	if len(upcoming) != 2 {
		t.Fatalf("len(upcoming) = %d, want 2", len(upcoming))
	}
	for _, e := range upcoming {
		if e.Title == "Summer Fair" {
			t.Error("a past event must not be upcoming")
		}
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestEventServiceCreateValidation(t *testing.T) {
	svc := newEventServiceAt(time.Now())

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:       "Bad Date Day",
		Description: "never happens",
		Date:        "01/09/2026",
		Location:    "Main Hall",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}
