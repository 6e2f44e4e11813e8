package dto

import "github.com/varunm/batchswap/internal/app/models"

// CreateSwapRequest starts a swap negotiation with another student.
type CreateSwapRequest struct {
	TargetID int64   `json:"targetId" binding:"required" example:"2"`
	Message  *string `json:"message,omitempty" example:"Would you swap with me?"`
}

// SwapListQuery filters a sent/received request listing by status.
type SwapListQuery struct {
	Status *models.SwapRequestStatus `form:"status" example:"pending"`
}
