package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the standard error envelope.
// A CustomError wrapping a sentinel keeps the sentinel's status and code but
// surfaces its own message and details.
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classify(err)

	detail := dto.NewErrorDetail(code, message)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
	}

	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidEmailDomain):
		return 400, dto.ErrorCodeInvalidEmail, "Email is not an institutional address"

	case errors.Is(err, apperrors.ErrNotAuthenticated),
		errors.Is(err, apperrors.ErrSessionNotFound):
		return 401, dto.ErrorCodeUnauthorized, "Authentication required"

	case errors.Is(err, apperrors.ErrRegistrationNotInitiated):
		return 401, dto.ErrorCodeUnauthorized, "Registration not initiated"

	case errors.Is(err, apperrors.ErrNotRequestTarget):
		return 403, dto.ErrorCodeForbidden, "Only the target of the request may do this"

	case errors.Is(err, apperrors.ErrNotRequestOwner):
		return 403, dto.ErrorCodeForbidden, "Only the requester may do this"

	case errors.Is(err, apperrors.ErrNotRequestParticipant):
		return 403, dto.ErrorCodeForbidden, "Not a participant of this swap request"

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403, dto.ErrorCodeForbidden, "Permission denied"

	case errors.Is(err, apperrors.ErrStudentNotFound):
		return 404, dto.ErrorCodeResourceNotFound, "Student not found"

	case errors.Is(err, apperrors.ErrSwapRequestNotFound):
		return 404, dto.ErrorCodeResourceNotFound, "Swap request not found"

	case errors.Is(err, apperrors.ErrResourceNotFound):
		return 404, dto.ErrorCodeResourceNotFound, "Resource not found"

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return 409, dto.ErrorCodeResourceAlreadyExists, "Student already registered"

	case errors.Is(err, apperrors.ErrPendingRequestExists):
		return 409, dto.ErrorCodeConflict, "A pending swap request already exists between these students"

	case errors.Is(err, apperrors.ErrSwapRequestProcessed):
		return 409, dto.ErrorCodeConflict, "Swap request already processed"

	case errors.Is(err, apperrors.ErrConflict):
		return 409, dto.ErrorCodeConflict, "Conflict"

	case errors.Is(err, apperrors.ErrInvalidCGPA):
		return 400, dto.ErrorCodeValidationFailed, "CGPA must be between 0 and 10"

	case errors.Is(err, apperrors.ErrInvalidBatch):
		return 400, dto.ErrorCodeValidationFailed, "Unknown batch"

	case errors.Is(err, apperrors.ErrSelfSwapRequest):
		return 400, dto.ErrorCodeValidationFailed, "Cannot send a swap request to yourself"

	case errors.Is(err, apperrors.ErrCGPAToleranceExceeded):
		return 400, dto.ErrorCodeValidationFailed, "CGPA difference exceeds the allowed tolerance"

	case errors.Is(err, apperrors.ErrEmptyMessage):
		return 400, dto.ErrorCodeValidationFailed, "Message text cannot be empty"

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return 400, dto.ErrorCodeValidationFailed, "Validation failed"

	default:
		return 500, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
