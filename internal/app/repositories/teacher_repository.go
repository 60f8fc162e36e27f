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

// TeacherRepository handles database operations for teacher records
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create creates a new teacher record
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (first_name, last_name, email, mobile, gender, date_of_birth, address, joining_date, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.Mobile,
		teacher.Gender, teacher.DateOfBirth, teacher.Address, teacher.JoiningDate,
		teacher.ImageURL,
	).Scan(&teacher.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a teacher by ID; returns (nil, nil) when absent
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, email, mobile, gender, date_of_birth, address, joining_date, image_url
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.Email,
		&teacher.Mobile,
		&teacher.Gender,
		&teacher.DateOfBirth,
		&teacher.Address,
		&teacher.JoiningDate,
		&teacher.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves all teachers ordered by first then last name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, email, mobile, gender, date_of_birth, address, joining_date, image_url
		FROM teachers
		ORDER BY first_name, last_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.Email,
			&teacher.Mobile,
			&teacher.Gender,
			&teacher.DateOfBirth,
			&teacher.Address,
			&teacher.JoiningDate,
			&teacher.ImageURL,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// EmailExists checks if another teacher already uses the email. excludeID
// skips the record being edited; pass 0 on create.
func (r *TeacherRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher email: %w", err)
	}

	return exists, nil
}

// Update updates an existing teacher record
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET first_name = $1, last_name = $2, email = $3, mobile = $4, gender = $5,
		    date_of_birth = $6, address = $7, joining_date = $8, image_url = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.Mobile,
		teacher.Gender, teacher.DateOfBirth, teacher.Address, teacher.JoiningDate,
		teacher.ImageURL, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete deletes a teacher record by ID
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
