package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/app/repositories"
	"github.com/varunm/batchswap/internal/config"
	"github.com/varunm/batchswap/internal/pkg/session"
)

// StudentStore is the persistence surface the services need for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateCGPA(ctx context.Context, id int64, cgpa float64) error
	ListByCGPAWindow(ctx context.Context, excludeID int64, min, max float64) ([]*models.Student, error)
	List(ctx context.Context, skip, limit int) ([]*models.Student, error)
}

// SwapRequestStore is the persistence surface for swap requests.
type SwapRequestStore interface {
	Create(ctx context.Context, request *models.SwapRequest) error
	GetByID(ctx context.Context, id int64) (*models.SwapRequest, error)
	HasPendingBetween(ctx context.Context, studentA, studentB int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64, sent bool, status *models.SwapRequestStatus) ([]*models.SwapRequest, error)
	Finalize(ctx context.Context, id int64, status models.SwapRequestStatus) error
	AcceptAndSwap(ctx context.Context, id int64) error
}

// ChatStore is the persistence surface for chat messages.
type ChatStore interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListByRequest(ctx context.Context, swapRequestID int64) ([]*models.ChatMessage, error)
}

// Services is the container for all service instances
type Services struct {
	AuthService    *AuthService
	StudentService *StudentService
	SwapService    *SwapService
	ChatService    *ChatService
}

// NewServices wires all services over the shared repositories
func NewServices(cfg *config.Config, repos *repositories.Repositories, sessions session.Store, lgr zerolog.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.StudentRepository, sessions, cfg.Auth.InstitutionalDomain, lgr),
		StudentService: NewStudentService(repos.StudentRepository, cfg.Swap.CGPATolerance),
		SwapService:    NewSwapService(repos.StudentRepository, repos.SwapRequestRepository, cfg.Swap.CGPATolerance, lgr),
		ChatService:    NewChatService(repos.SwapRequestRepository, repos.ChatRepository),
	}
}
