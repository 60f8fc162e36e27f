package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/pkg/apperrors"
)

// HolidayRepository handles database operations for holidays
type HolidayRepository struct {
	db *pgxpool.Pool
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{
		db: db,
	}
}

// Create creates a new holiday
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	query := `
		INSERT INTO holidays (name, date, holiday_type, description, is_recurring, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		holiday.Name, holiday.Date, holiday.Type, holiday.Description,
		holiday.IsRecurring, holiday.IsActive,
	).Scan(&holiday.ID, &holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a holiday by ID; returns (nil, nil) when absent
func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*models.Holiday, error) {
	query := `
		SELECT id, name, date, holiday_type, description, is_recurring, is_active, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	var holiday models.Holiday
	err := r.db.QueryRow(ctx, query, id).Scan(
		&holiday.ID,
		&holiday.Name,
		&holiday.Date,
		&holiday.Type,
		&holiday.Description,
		&holiday.IsRecurring,
		&holiday.IsActive,
		&holiday.CreatedAt,
		&holiday.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving holiday: %w", err)
	}

	return &holiday, nil
}

// GetByYear retrieves the active holidays of a calendar year ordered by date
func (r *HolidayRepository) GetByYear(ctx context.Context, year int) ([]*models.Holiday, error) {
	query := `
		SELECT id, name, date, holiday_type, description, is_recurring, is_active, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND is_active = TRUE
		ORDER BY date
	`

	return r.queryHolidays(ctx, query, year)
}

// GetUpcoming retrieves active holidays on or after the given day, soonest
// first, capped at limit. The cast drops the time of day from the cutoff so a
// holiday dated today still qualifies.
func (r *HolidayRepository) GetUpcoming(ctx context.Context, from time.Time, limit int) ([]*models.Holiday, error) {
	query := `
		SELECT id, name, date, holiday_type, description, is_recurring, is_active, created_at, updated_at
		FROM holidays
		WHERE date >= $1::date AND is_active = TRUE
		ORDER BY date
		LIMIT $2
	`

	return r.queryHolidays(ctx, query, from, limit)
}

func (r *HolidayRepository) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]*models.Holiday, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		var holiday models.Holiday
		if err := rows.Scan(
			&holiday.ID,
			&holiday.Name,
			&holiday.Date,
			&holiday.Type,
			&holiday.Description,
			&holiday.IsRecurring,
			&holiday.IsActive,
			&holiday.CreatedAt,
			&holiday.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// ExistsByNameAndDate checks if another holiday already uses the (name, date) pair
func (r *HolidayRepository) ExistsByNameAndDate(ctx context.Context, name string, date time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM holidays WHERE name = $1 AND date = $2 AND id != $3)`,
		name, date, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking holiday uniqueness: %w", err)
	}

	return exists, nil
}

// Update updates an existing holiday
func (r *HolidayRepository) Update(ctx context.Context, holiday *models.Holiday) error {
	query := `
		UPDATE holidays
		SET name = $1, date = $2, holiday_type = $3, description = $4,
		    is_recurring = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		holiday.Name, holiday.Date, holiday.Type, holiday.Description,
		holiday.IsRecurring, holiday.IsActive, holiday.ID)
	if err != nil {
		return fmt.Errorf("error updating holiday: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayNotFound
	}

	return nil
}

// Delete deletes a holiday by ID
func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting holiday: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayNotFound
	}

	return nil
}
