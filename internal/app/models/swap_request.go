package models

import "time"

// SwapRequest is a two-party batch exchange negotiation. At most one pending
// request may exist per unordered student pair.
type SwapRequest struct {
	ID          int64             `json:"id" db:"id" example:"42"`
	RequesterID int64             `json:"requesterId" db:"requester_id" example:"1"`
	TargetID    int64             `json:"targetId" db:"target_id" example:"2"`
	Status      SwapRequestStatus `json:"status" db:"status" example:"pending"`
	Message     *string           `json:"message,omitempty" db:"message"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Requester *Student `json:"requester,omitempty"`
	Target    *Student `json:"target,omitempty"`
}

// ParticipantIDs returns both party ids.
func (r *SwapRequest) ParticipantIDs() (int64, int64) {
	return r.RequesterID, r.TargetID
}

// IsParticipant reports whether studentID is the requester or the target.
func (r *SwapRequest) IsParticipant(studentID int64) bool {
	return r.RequesterID == studentID || r.TargetID == studentID
}

// OtherParticipant returns the counterparty of studentID. The caller must
// have checked IsParticipant first.
func (r *SwapRequest) OtherParticipant(studentID int64) int64 {
	if r.RequesterID == studentID {
		return r.TargetID
	}
	return r.RequesterID
}
