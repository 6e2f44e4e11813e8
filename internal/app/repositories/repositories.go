package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is the container for all repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	SwapRequestRepository *SwapRequestRepository
	ChatRepository        *ChatRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		SwapRequestRepository: NewSwapRequestRepository(db),
		ChatRepository:        NewChatRepository(db),
	}
}
