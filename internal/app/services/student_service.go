package services

import (
	"context"
	"math"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// StudentService handles student profiles and eligibility queries.
type StudentService struct {
	students  StudentStore
	tolerance float64
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, cgpaTolerance float64) *StudentService {
	return &StudentService{students: students, tolerance: cgpaTolerance}
}

// ListEligible returns every other student whose CGPA lies within the
// tolerance window around the given student's CGPA, highest CGPA first,
// each annotated with the absolute difference.
func (s *StudentService) ListEligible(ctx context.Context, student *models.Student) ([]dto.EligibleStudent, error) {
	min := student.CGPA - s.tolerance
	max := student.CGPA + s.tolerance

	candidates, err := s.students.ListByCGPAWindow(ctx, student.ID, min, max)
	if err != nil {
		return nil, err
	}

	eligible := make([]dto.EligibleStudent, 0, len(candidates))
	for _, candidate := range candidates {
		eligible = append(eligible, dto.EligibleStudent{
			ID:             candidate.ID,
			Email:          candidate.Email,
			FirstName:      candidate.FirstName,
			LastName:       candidate.LastName,
			CGPA:           candidate.CGPA,
			CurrentBatch:   candidate.CurrentBatch,
			CGPADifference: math.Abs(candidate.CGPA - student.CGPA),
		})
	}

	return eligible, nil
}

// GetProfile retrieves a student by id
func (s *StudentService) GetProfile(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// UpdateCGPA changes a student's CGPA and returns the refreshed profile
func (s *StudentService) UpdateCGPA(ctx context.Context, studentID int64, cgpa float64) (*models.Student, error) {
	if cgpa < 0 || cgpa > 10 {
		return nil, apperrors.ErrInvalidCGPA
	}

	if err := s.students.UpdateCGPA(ctx, studentID, cgpa); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, studentID)
}

// List returns a page of students, newest first. Skip and limit are clamped
// to sane bounds.
func (s *StudentService) List(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.students.List(ctx, skip, limit)
}
