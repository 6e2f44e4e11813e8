package services

import (
	"context"
	"strings"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// ChatService handles per-swap-request messaging. Every operation is scoped
// to the two participants of the underlying request.
type ChatService struct {
	requests SwapRequestStore
	messages ChatStore
}

// NewChatService creates a new chat service instance
func NewChatService(requests SwapRequestStore, messages ChatStore) *ChatService {
	return &ChatService{requests: requests, messages: messages}
}

// Authorize verifies the student is a participant of the swap request and
// returns the request for follow-up use.
func (s *ChatService) Authorize(ctx context.Context, studentID, swapRequestID int64) (*models.SwapRequest, error) {
	request, err := s.requests.GetByID(ctx, swapRequestID)
	if err != nil {
		return nil, err
	}
	if !request.IsParticipant(studentID) {
		return nil, apperrors.ErrNotRequestParticipant
	}
	return request, nil
}

// PostMessage persists a message from the sender to the counterparty of the
// swap request. Whitespace-only messages are rejected.
func (s *ChatService) PostMessage(ctx context.Context, sender *models.Student, swapRequestID int64, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	request, err := s.Authorize(ctx, sender.ID, swapRequestID)
	if err != nil {
		return nil, err
	}

	message := &models.ChatMessage{
		SenderID:      sender.ID,
		ReceiverID:    request.OtherParticipant(sender.ID),
		SwapRequestID: swapRequestID,
		Message:       text,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	message.Sender = sender

	return message, nil
}

// History returns the full message history of the swap request in ascending
// creation order.
func (s *ChatService) History(ctx context.Context, studentID, swapRequestID int64) ([]*models.ChatMessage, error) {
	if _, err := s.Authorize(ctx, studentID, swapRequestID); err != nil {
		return nil, err
	}
	return s.messages.ListByRequest(ctx, swapRequestID)
}
