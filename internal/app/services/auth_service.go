package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
	"github.com/varunm/batchswap/internal/pkg/identity"
	"github.com/varunm/batchswap/internal/pkg/session"
)

// AuthService turns externally verified emails into domain identities and
// owns the session lifecycle around login and registration.
type AuthService struct {
	students StudentStore
	sessions session.Store
	domain   string
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(students StudentStore, sessions session.Store, institutionalDomain string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		students: students,
		sessions: sessions,
		domain:   institutionalDomain,
		logger:   logger,
	}
}

// LoginResult is the outcome of resolving a verified email.
type LoginResult struct {
	SessionID string
	Identity  identity.Identity
	// Student is nil when the email has no profile yet and registration
	// is required.
	Student *models.Student
}

// ResolveIdentity validates the verified email, looks up the student and
// establishes a session. An unknown email yields a registration-pending
// session instead of an error.
func (s *AuthService) ResolveIdentity(ctx context.Context, email string) (*LoginResult, error) {
	ident, err := identity.Resolve(email, s.domain)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetByEmail(ctx, ident.Email)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error resolving student: %w", err)
	}

	data := session.Data{
		Email:             ident.Email,
		FirstName:         ident.FirstName,
		LastName:          ident.LastName,
		NeedsRegistration: student == nil,
	}

	sessionID := session.NewID()
	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	s.logger.Info().
		Str("email", ident.Email).
		Bool("needsRegistration", data.NeedsRegistration).
		Msg("Identity resolved")

	return &LoginResult{SessionID: sessionID, Identity: ident, Student: student}, nil
}

// CompleteRegistration creates the student profile for a session that
// resolved to an unregistered email.
func (s *AuthService) CompleteRegistration(ctx context.Context, sessionID string, cgpa float64, batch models.Batch) (*models.Student, error) {
	data, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrRegistrationNotInitiated
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}
	if data.Email == "" || !data.NeedsRegistration {
		return nil, apperrors.ErrRegistrationNotInitiated
	}

	if cgpa < 0 || cgpa > 10 {
		return nil, apperrors.ErrInvalidCGPA
	}
	if !models.ValidBatch(batch) {
		return nil, apperrors.ErrInvalidBatch
	}

	if _, err := s.students.GetByEmail(ctx, data.Email); err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error checking existing student: %w", err)
	}

	student := &models.Student{
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		CGPA:          cgpa,
		CurrentBatch:  batch,
		OriginalBatch: batch,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	data.NeedsRegistration = false
	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return nil, fmt.Errorf("error updating session: %w", err)
	}

	s.logger.Info().Str("email", student.Email).Int64("studentID", student.ID).Msg("Registration completed")
	return student, nil
}

// ResolveSession loads the session and the student bound to it. A session
// referencing a since-deleted student is cleared and reported as
// unauthenticated. For a registration-pending session the student is nil.
func (s *AuthService) ResolveSession(ctx context.Context, sessionID string) (session.Data, *models.Student, error) {
	data, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return session.Data{}, nil, apperrors.ErrNotAuthenticated
		}
		return session.Data{}, nil, fmt.Errorf("error loading session: %w", err)
	}

	if data.NeedsRegistration {
		return data, nil, nil
	}

	student, err := s.students.GetByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			// The student was deleted under a live session
			_ = s.sessions.Delete(ctx, sessionID)
			return session.Data{}, nil, apperrors.ErrNotAuthenticated
		}
		return session.Data{}, nil, fmt.Errorf("error resolving student: %w", err)
	}

	return data, student, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
