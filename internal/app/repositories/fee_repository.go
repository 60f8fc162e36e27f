package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fees
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// Create creates a new fee. Amount travels as a decimal string and is cast
// to NUMERIC by the database.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, amount, due_date, paid)
		VALUES ($1, $2::numeric, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, fee.StudentID, fee.Amount, fee.DueDate, fee.Paid).Scan(&fee.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a fee by ID with the student's name; returns (nil, nil) when absent
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `
		SELECT f.id, f.student_id, f.amount::text, f.due_date, f.paid,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM fees f
		JOIN users u ON u.id = f.student_id
		WHERE f.id = $1
	`

	var fee models.Fee
	var student models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.DueDate,
		&fee.Paid,
		&student.ID,
		&student.Email,
		&student.FirstName,
		&student.LastName,
		&student.Role,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	fee.Student = &student
	return &fee, nil
}

// GetAll retrieves all fees with student names, due soonest first
func (r *FeeRepository) GetAll(ctx context.Context) ([]*models.Fee, error) {
	query := `
		SELECT f.id, f.student_id, f.amount::text, f.due_date, f.paid,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM fees f
		JOIN users u ON u.id = f.student_id
		ORDER BY f.due_date, f.id
	`

	return r.queryFees(ctx, query)
}

// GetByStudentID retrieves the fees of one student, due soonest first
func (r *FeeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	query := `
		SELECT f.id, f.student_id, f.amount::text, f.due_date, f.paid,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM fees f
		JOIN users u ON u.id = f.student_id
		WHERE f.student_id = $1
		ORDER BY f.due_date, f.id
	`

	return r.queryFees(ctx, query, studentID)
}

func (r *FeeRepository) queryFees(ctx context.Context, query string, args ...interface{}) ([]*models.Fee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		var student models.User
		if err := rows.Scan(
			&fee.ID,
			&fee.StudentID,
			&fee.Amount,
			&fee.DueDate,
			&fee.Paid,
			&student.ID,
			&student.Email,
			&student.FirstName,
			&student.LastName,
			&student.Role,
			&student.IsActive,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		fee.Student = &student
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Update updates an existing fee
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET student_id = $1, amount = $2::numeric, due_date = $3, paid = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, fee.StudentID, fee.Amount, fee.DueDate, fee.Paid, fee.ID)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// Delete deletes a fee by ID
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
