package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, email, first_name, last_name, cgpa, current_batch, original_batch, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.CGPA,
		&s.CurrentBatch,
		&s.OriginalBatch,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &s, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (email, first_name, last_name, cgpa, current_batch, original_batch)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Email,
		student.FirstName,
		student.LastName,
		student.CGPA,
		student.CurrentBatch,
		student.OriginalBatch,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation on the email constraint
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`
	return scanStudent(r.db.QueryRow(ctx, query, email))
}

// UpdateCGPA sets a student's CGPA
func (r *StudentRepository) UpdateCGPA(ctx context.Context, id int64, cgpa float64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE students SET cgpa = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, cgpa, id)
	if err != nil {
		return fmt.Errorf("error updating student cgpa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ListByCGPAWindow retrieves every student other than excludeID whose CGPA
// lies in [min, max], ordered by descending CGPA.
func (r *StudentRepository) ListByCGPAWindow(ctx context.Context, excludeID int64, min, max float64) ([]*models.Student, error) {
	sql, args, err := squirrel.Select(
		"id", "email", "first_name", "last_name", "cgpa", "current_batch", "original_batch", "created_at", "updated_at",
	).
		From("students").
		Where("id <> ?", excludeID).
		Where("cgpa >= ?", min).
		Where("cgpa <= ?", max).
		OrderBy("cgpa DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// List retrieves students paginated, newest first
func (r *StudentRepository) List(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
