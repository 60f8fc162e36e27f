package services

import (
	"context"
	"fmt"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/validation"
)

// EventStore is the event persistence surface the service needs.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]*models.Event, error)
}

// EventService manages campus events
type EventService struct {
	eventStore EventStore
	now        func() time.Time
}

// NewEventService creates a new event service
func NewEventService(eventStore EventStore) *EventService {
	return &EventService{
		eventStore: eventStore,
		now:        time.Now,
	}
}

// List returns all events ordered by date
func (s *EventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return toEventResponses(events), nil
}

// ListUpcoming returns events from today onward
func (s *EventService) ListUpcoming(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventStore.GetUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return toEventResponses(events), nil
}

// Create validates and persists a new event
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{"date": "date must be in YYYY-MM-DD format"})
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
	}

	if err := s.eventStore.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func toEventResponse(e *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        validation.FormatDate(e.Date),
		Location:    e.Location,
	}
}

func toEventResponses(events []*models.Event) []dto.EventResponse {
	responses := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toEventResponse(e))
	}
	return responses
}
