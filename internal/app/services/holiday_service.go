package services

import (
	"context"
	"fmt"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/dberrors"
	"github.com/preskool/school/internal/pkg/helpers"
	"github.com/preskool/school/internal/pkg/validation"
)

// upcomingHolidayLimit caps the upcoming section of the calendar screen.
const upcomingHolidayLimit = 5

// availableYearSpan is how many years around the current one the calendar
// offers in its year picker.
const availableYearSpan = 2

// HolidayStore is the holiday persistence surface the service needs.
type HolidayStore interface {
	Create(ctx context.Context, holiday *models.Holiday) error
	GetByID(ctx context.Context, id int64) (*models.Holiday, error)
	GetByYear(ctx context.Context, year int) ([]*models.Holiday, error)
	GetUpcoming(ctx context.Context, from time.Time, limit int) ([]*models.Holiday, error)
	ExistsByNameAndDate(ctx context.Context, name string, date time.Time, excludeID int64) (bool, error)
	Update(ctx context.Context, holiday *models.Holiday) error
	Delete(ctx context.Context, id int64) error
}

// HolidayService manages the holiday calendar
type HolidayService struct {
	holidayStore HolidayStore
	now          func() time.Time
}

// NewHolidayService creates a new holiday service
func NewHolidayService(holidayStore HolidayStore) *HolidayService {
	return &HolidayService{
		holidayStore: holidayStore,
		now:          time.Now,
	}
}

// ListCalendar builds the holiday calendar screen for one year. The year
// parameter is the raw query value; anything unparsable falls back to the
// current year. Only active holidays appear.
func (s *HolidayService) ListCalendar(ctx context.Context, yearParam string) (*dto.HolidayListResponse, error) {
	today := s.now()
	year := helpers.YearOrDefault(yearParam, today.Year())

	holidays, err := s.holidayStore.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	upcoming, err := s.holidayStore.GetUpcoming(ctx, today, upcomingHolidayLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}

	resp := &dto.HolidayListResponse{
		Holidays:         make([]dto.HolidayResponse, 0, len(holidays)),
		HolidaysByMonth:  make(map[string][]dto.HolidayResponse),
		UpcomingHolidays: make([]dto.HolidayResponse, 0, len(upcoming)),
		CurrentYear:      year,
		TotalHolidays:    len(holidays),
		TypeCounts:       make(map[string]int),
		AvailableYears:   availableYears(today.Year()),
	}

	for _, h := range holidays {
		hr := toHolidayResponse(h, today)
		resp.Holidays = append(resp.Holidays, hr)

		month := h.Date.Month().String()
		resp.HolidaysByMonth[month] = append(resp.HolidaysByMonth[month], hr)
		resp.TypeCounts[string(h.Type)]++
	}

	for _, h := range upcoming {
		resp.UpcomingHolidays = append(resp.UpcomingHolidays, toHolidayResponse(h, today))
	}

	return resp, nil
}

// Get returns one holiday
func (s *HolidayService) Get(ctx context.Context, id int64) (*dto.HolidayResponse, error) {
	holiday, err := s.holidayStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	if holiday == nil {
		return nil, apperrors.ErrHolidayNotFound
	}

	resp := toHolidayResponse(holiday, s.now())
	return &resp, nil
}

// Create validates and persists a new holiday. The (name, date) pair is
// unique; two different holidays can share a date.
func (s *HolidayService) Create(ctx context.Context, req dto.CreateHolidayRequest) (*dto.HolidayResponse, error) {
	holiday, err := s.buildHoliday(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	if err := s.holidayStore.Create(ctx, holiday); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "holidays_name_date_key") {
			return nil, apperrors.ErrHolidayAlreadyExists
		}
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	resp := toHolidayResponse(holiday, s.now())
	return &resp, nil
}

// Update validates and applies edits to an existing holiday
func (s *HolidayService) Update(ctx context.Context, id int64, req dto.UpdateHolidayRequest) (*dto.HolidayResponse, error) {
	existing, err := s.holidayStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrHolidayNotFound
	}

	holiday, err := s.buildHoliday(ctx, req, id)
	if err != nil {
		return nil, err
	}

	holiday.ID = id
	if err := s.holidayStore.Update(ctx, holiday); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "holidays_name_date_key") {
			return nil, apperrors.ErrHolidayAlreadyExists
		}
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}

	resp := toHolidayResponse(holiday, s.now())
	return &resp, nil
}

// Delete removes a holiday
func (s *HolidayService) Delete(ctx context.Context, id int64) error {
	if err := s.holidayStore.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *HolidayService) buildHoliday(ctx context.Context, req dto.CreateHolidayRequest, excludeID int64) (*models.Holiday, error) {
	fieldErrs := validation.FieldErrors{}

	if !validation.NewStringValidation(req.Name).WithMaxLength(200).Validate() {
		fieldErrs.Add("name", "name is required and at most 200 characters")
	}

	holidayType := models.HolidayType(req.HolidayType)
	if !holidayType.Valid() {
		fieldErrs.Add("holidayType", "holiday type is not one of the allowed choices")
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		fieldErrs.Add("date", "date must be in YYYY-MM-DD format")
	}

	if fieldErrs.HasErrors() {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	exists, err := s.holidayStore.ExistsByNameAndDate(ctx, req.Name, date, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrHolidayAlreadyExists
	}

	// New holidays are active unless the request says otherwise
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holidayType,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
		IsActive:    isActive,
	}, nil
}

func toHolidayResponse(h *models.Holiday, today time.Time) dto.HolidayResponse {
	resp := dto.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        validation.FormatDate(h.Date),
		HolidayType: string(h.Type),
		Description: h.Description,
		IsRecurring: h.IsRecurring,
		IsActive:    h.IsActive,
		IsUpcoming:  h.IsUpcoming(today),
	}
	if days, ok := h.DaysUntil(today); ok {
		resp.DaysUntil = &days
	}
	return resp
}

func availableYears(current int) []int {
	years := make([]int, 0, 2*availableYearSpan+1)
	for y := current - availableYearSpan; y <= current+availableYearSpan; y++ {
		years = append(years, y)
	}
	return years
}
