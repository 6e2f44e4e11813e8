package dto

import "github.com/varunm/batchswap/internal/app/models"

// CallbackRequest carries the email the external identity provider verified.
type CallbackRequest struct {
	Email string `json:"email" binding:"required,email" example:"anita.rao2022b@vitstudent.ac.in"`
}

// AuthResponse is returned from the identity callback. Status is either
// "success" (student exists, logged in) or "registration_required".
type AuthResponse struct {
	Status    string          `json:"status" example:"registration_required"`
	Message   string          `json:"message,omitempty" example:"Please complete your registration"`
	Student   *models.Student `json:"student,omitempty"`
	Email     string          `json:"email,omitempty" example:"anita.rao2022b@vitstudent.ac.in"`
	FirstName string          `json:"firstName,omitempty" example:"Anita"`
	LastName  string          `json:"lastName,omitempty" example:"Rao"`
}

// RegisterRequest completes registration after a successful identity
// resolution. CGPA is a pointer so the boundary value 0.0 passes the
// required check; the range check lives in the service.
type RegisterRequest struct {
	CGPA         *float64     `json:"cgpa" binding:"required" example:"8.55"`
	CurrentBatch models.Batch `json:"currentBatch" binding:"required" example:"Forenoon"`
}

// AuthCheckResponse reports the session state without requiring login.
type AuthCheckResponse struct {
	Authenticated     bool   `json:"authenticated" example:"true"`
	NeedsRegistration bool   `json:"needsRegistration" example:"false"`
	Email             string `json:"email,omitempty" example:"anita.rao2022b@vitstudent.ac.in"`
}
