package models

import "time"

// ChatMessage is one message inside a swap request negotiation. Sender and
// receiver are always the two participants of the owning request.
type ChatMessage struct {
	ID            int64     `json:"id" db:"id" example:"7"`
	SenderID      int64     `json:"senderId" db:"sender_id" example:"1"`
	ReceiverID    int64     `json:"receiverId" db:"receiver_id" example:"2"`
	SwapRequestID int64     `json:"swapRequestId" db:"swap_request_id" example:"42"`
	Message       string    `json:"message" db:"message" example:"hi, still interested?"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Sender *Student `json:"sender,omitempty"`
}
