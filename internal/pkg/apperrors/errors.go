package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidEmailDomain = errors.New("email is not an institutional address")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Registration errors
var (
	ErrAlreadyRegistered        = errors.New("student already registered")
	ErrRegistrationNotInitiated = errors.New("registration not initiated")
	ErrInvalidCGPA              = errors.New("cgpa must be between 0 and 10")
	ErrInvalidBatch             = errors.New("unknown batch")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Swap request errors
var (
	ErrSwapRequestNotFound   = errors.New("swap request not found")
	ErrSelfSwapRequest       = errors.New("cannot send a swap request to yourself")
	ErrCGPAToleranceExceeded = errors.New("cgpa difference exceeds tolerance")
	ErrPendingRequestExists  = errors.New("a pending swap request already exists between these students")
	ErrSwapRequestProcessed  = errors.New("swap request already processed")
	ErrNotRequestTarget      = errors.New("only the target of the request may do this")
	ErrNotRequestOwner       = errors.New("only the requester may do this")
	ErrNotRequestParticipant = errors.New("not a participant of this swap request")
)

// Chat errors
var (
	ErrEmptyMessage = errors.New("message text cannot be empty")
)

// CustomError wraps one of the sentinel errors with a caller-facing message
// and optional structured details. errors.Is still matches the sentinel
// through Unwrap, so the HTTP mapping stays driven by the sentinel.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
