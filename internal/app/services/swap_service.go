package services

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// SwapService owns the swap-request lifecycle: creation with eligibility
// checks, the atomic accept, and the reject/cancel terminal transitions.
type SwapService struct {
	students  StudentStore
	requests  SwapRequestStore
	tolerance float64
	logger    zerolog.Logger
}

// NewSwapService creates a new swap service instance
func NewSwapService(students StudentStore, requests SwapRequestStore, cgpaTolerance float64, logger zerolog.Logger) *SwapService {
	return &SwapService{
		students:  students,
		requests:  requests,
		tolerance: cgpaTolerance,
		logger:    logger,
	}
}

// Create opens a pending swap request from requester towards targetID.
func (s *SwapService) Create(ctx context.Context, requester *models.Student, targetID int64, message *string) (*models.SwapRequest, error) {
	if targetID == requester.ID {
		return nil, apperrors.ErrSelfSwapRequest
	}

	target, err := s.students.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Target student not found")
		}
		return nil, err
	}

	if diff := math.Abs(requester.CGPA - target.CGPA); diff > s.tolerance {
		return nil, apperrors.NewCustomError(apperrors.ErrCGPAToleranceExceeded, "CGPA difference exceeds the allowed tolerance").
			WithDetails(map[string]interface{}{
				"difference": diff,
				"tolerance":  s.tolerance,
			})
	}

	exists, err := s.requests.HasPendingBetween(ctx, requester.ID, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrPendingRequestExists
	}

	request := &models.SwapRequest{
		RequesterID: requester.ID,
		TargetID:    targetID,
		Status:      models.SwapStatusPending,
		Message:     message,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	request.Requester = requester
	request.Target = target

	s.logger.Info().
		Int64("requestID", request.ID).
		Int64("requesterID", requester.ID).
		Int64("targetID", targetID).
		Msg("Swap request created")

	return request, nil
}

// Get retrieves a swap request visible only to its two participants.
func (s *SwapService) Get(ctx context.Context, studentID, requestID int64) (*models.SwapRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.IsParticipant(studentID) {
		return nil, apperrors.ErrNotRequestParticipant
	}
	return request, nil
}

// List returns the student's sent or received requests, newest first,
// optionally filtered by status.
func (s *SwapService) List(ctx context.Context, studentID int64, sent bool, status *models.SwapRequestStatus) ([]*models.SwapRequest, error) {
	return s.requests.ListByStudent(ctx, studentID, sent, status)
}

// Accept performs the batch exchange. Only the target of a pending request
// may accept; the swap and the status change happen atomically.
func (s *SwapService) Accept(ctx context.Context, studentID, requestID int64) (*models.SwapRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.TargetID != studentID {
		return nil, apperrors.ErrNotRequestTarget
	}
	if request.Status != models.SwapStatusPending {
		return nil, apperrors.ErrSwapRequestProcessed
	}

	if err := s.requests.AcceptAndSwap(ctx, requestID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestID", requestID).
		Int64("requesterID", request.RequesterID).
		Int64("targetID", request.TargetID).
		Msg("Swap request accepted, batches exchanged")

	return s.requests.GetByID(ctx, requestID)
}

// Reject declines a pending request. Only the target may reject.
func (s *SwapService) Reject(ctx context.Context, studentID, requestID int64) (*models.SwapRequest, error) {
	return s.finalize(ctx, studentID, requestID, models.SwapStatusRejected)
}

// Cancel withdraws a pending request. Only the requester may cancel.
func (s *SwapService) Cancel(ctx context.Context, studentID, requestID int64) (*models.SwapRequest, error) {
	return s.finalize(ctx, studentID, requestID, models.SwapStatusCancelled)
}

func (s *SwapService) finalize(ctx context.Context, studentID, requestID int64, status models.SwapRequestStatus) (*models.SwapRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.SwapStatusRejected:
		if request.TargetID != studentID {
			return nil, apperrors.ErrNotRequestTarget
		}
	case models.SwapStatusCancelled:
		if request.RequesterID != studentID {
			return nil, apperrors.ErrNotRequestOwner
		}
	}

	if request.Status != models.SwapStatusPending {
		return nil, apperrors.ErrSwapRequestProcessed
	}

	if err := s.requests.Finalize(ctx, requestID, status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestID", requestID).
		Str("status", string(status)).
		Msg("Swap request finalized")

	return s.requests.GetByID(ctx, requestID)
}
