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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, department_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.Code, subject.DepartmentID).Scan(&subject.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a subject by ID with its department; returns (nil, nil) when absent
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.department_id, d.id, d.name, d.description
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	var subject models.Subject
	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.DepartmentID,
		&department.ID,
		&department.Name,
		&department.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	subject.Department = &department
	return &subject, nil
}

// GetAll retrieves all subjects with their departments, ordered by department
// name then subject name
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.department_id, d.id, d.name, d.description
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		ORDER BY d.name, s.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		var department models.Department
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.DepartmentID,
			&department.ID,
			&department.Name,
			&department.Description,
		); err != nil {
			return nil, err
		}
		subject.Department = &department
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetByDepartmentID retrieves all subjects of a department ordered by name
func (r *SubjectRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, department_id
		FROM subjects
		WHERE department_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.DepartmentID,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// CodeExists checks if another subject already uses the code
func (r *SubjectRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM subjects WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject code: %w", err)
	}

	return exists, nil
}

// CountDistinctDepartments counts how many departments have at least one subject
func (r *SubjectRepository) CountDistinctDepartments(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT department_id) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subject departments: %w", err)
	}

	return count, nil
}

// Update updates an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, department_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, subject.Name, subject.Code, subject.DepartmentID, subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete deletes a subject by ID
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
