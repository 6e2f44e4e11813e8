package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varunm/batchswap/internal/app/models"
)

// ChatRepository handles database operations for chat messages
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts a new chat message
func (r *ChatRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (sender_id, receiver_id, swap_request_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.SwapRequestID,
		message.Message,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating chat message: %w", err)
	}

	return nil
}

// ListByRequest retrieves all messages of a swap request in ascending
// creation order, with the sender's name attached for display.
func (r *ChatRepository) ListByRequest(ctx context.Context, swapRequestID int64) ([]*models.ChatMessage, error) {
	query := `
		SELECT
			cm.id, cm.sender_id, cm.receiver_id, cm.swap_request_id, cm.message, cm.created_at,
			s.id, s.email, s.first_name, s.last_name, s.cgpa, s.current_batch, s.original_batch, s.created_at, s.updated_at
		FROM chat_messages cm
		JOIN students s ON cm.sender_id = s.id
		WHERE cm.swap_request_id = $1
		ORDER BY cm.created_at ASC, cm.id ASC
	`

	rows, err := r.db.Query(ctx, query, swapRequestID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		var message models.ChatMessage
		var sender models.Student

		err := rows.Scan(
			&message.ID, &message.SenderID, &message.ReceiverID, &message.SwapRequestID, &message.Message, &message.CreatedAt,
			&sender.ID, &sender.Email, &sender.FirstName, &sender.LastName, &sender.CGPA, &sender.CurrentBatch, &sender.OriginalBatch, &sender.CreatedAt, &sender.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}

		message.Sender = &sender
		messages = append(messages, &message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}

	return messages, nil
}
