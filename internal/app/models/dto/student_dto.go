package dto

import "github.com/varunm/batchswap/internal/app/models"

// EligibleStudent is a swap candidate annotated with the absolute CGPA
// difference from the requesting student.
type EligibleStudent struct {
	ID             int64        `json:"id" example:"2"`
	Email          string       `json:"email" example:"mira.nair2023f@vitstudent.ac.in"`
	FirstName      string       `json:"firstName" example:"Mira"`
	LastName       string       `json:"lastName" example:"Nair"`
	CGPA           float64      `json:"cgpa" example:"8.50"`
	CurrentBatch   models.Batch `json:"currentBatch" example:"Evening 1"`
	CGPADifference float64      `json:"cgpaDifference" example:"0.05"`
}

// UpdateProfileRequest updates mutable profile fields. Only the CGPA is
// mutable today.
type UpdateProfileRequest struct {
	CGPA *float64 `json:"cgpa,omitempty" example:"8.61"`
}

// ListStudentsQuery is the pagination query for the student listing.
type ListStudentsQuery struct {
	Skip  int `form:"skip,default=0" example:"0"`
	Limit int `form:"limit,default=100" example:"100"`
}
