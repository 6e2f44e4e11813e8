package dto

// PostMessageRequest is the REST body for posting a chat message.
type PostMessageRequest struct {
	Message string `json:"message" binding:"required" example:"hi, still interested?"`
}
