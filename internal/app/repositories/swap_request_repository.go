package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/db"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// SwapRequestRepository handles database operations for swap requests
type SwapRequestRepository struct {
	db *pgxpool.Pool
}

// NewSwapRequestRepository creates a new SwapRequestRepository
func NewSwapRequestRepository(db *pgxpool.Pool) *SwapRequestRepository {
	return &SwapRequestRepository{db: db}
}

// requestWithProfiles selects a swap request joined with both party
// profiles.
func requestWithProfiles() squirrel.SelectBuilder {
	return squirrel.Select(
		"sr.id", "sr.requester_id", "sr.target_id", "sr.status", "sr.message", "sr.created_at", "sr.updated_at",
		"req.id", "req.email", "req.first_name", "req.last_name", "req.cgpa", "req.current_batch", "req.original_batch", "req.created_at", "req.updated_at",
		"tgt.id", "tgt.email", "tgt.first_name", "tgt.last_name", "tgt.cgpa", "tgt.current_batch", "tgt.original_batch", "tgt.created_at", "tgt.updated_at",
	).
		From("swap_requests sr").
		Join("students req ON sr.requester_id = req.id").
		Join("students tgt ON sr.target_id = tgt.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanRequestWithProfiles(row pgx.Row) (*models.SwapRequest, error) {
	var request models.SwapRequest
	var requester, target models.Student

	err := row.Scan(
		&request.ID, &request.RequesterID, &request.TargetID, &request.Status, &request.Message, &request.CreatedAt, &request.UpdatedAt,
		&requester.ID, &requester.Email, &requester.FirstName, &requester.LastName, &requester.CGPA, &requester.CurrentBatch, &requester.OriginalBatch, &requester.CreatedAt, &requester.UpdatedAt,
		&target.ID, &target.Email, &target.FirstName, &target.LastName, &target.CGPA, &target.CurrentBatch, &target.OriginalBatch, &target.CreatedAt, &target.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSwapRequestNotFound
		}
		return nil, fmt.Errorf("error scanning swap request: %w", err)
	}

	request.Requester = &requester
	request.Target = &target
	return &request, nil
}

// Create inserts a new pending swap request
func (r *SwapRequestRepository) Create(ctx context.Context, request *models.SwapRequest) error {
	query := `
		INSERT INTO swap_requests (requester_id, target_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.RequesterID,
		request.TargetID,
		request.Status,
		request.Message,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 on the pending-pair partial index: the duplicate check
		// raced with another create
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrPendingRequestExists
		}
		return fmt.Errorf("error creating swap request: %w", err)
	}

	return nil
}

// GetByID retrieves a swap request with both party profiles attached
func (r *SwapRequestRepository) GetByID(ctx context.Context, id int64) (*models.SwapRequest, error) {
	sql, args, err := requestWithProfiles().Where("sr.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return scanRequestWithProfiles(r.db.QueryRow(ctx, sql, args...))
}

// HasPendingBetween reports whether a pending request exists between the two
// students in either direction.
func (r *SwapRequestRepository) HasPendingBetween(ctx context.Context, studentA, studentB int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM swap_requests
			WHERE status = $1
			  AND ((requester_id = $2 AND target_id = $3) OR (requester_id = $3 AND target_id = $2))
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, models.SwapStatusPending, studentA, studentB).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking pending swap request: %w", err)
	}
	return exists, nil
}

// ListByStudent retrieves requests where the student is the requester
// (sent=true) or the target (sent=false), optionally filtered by status.
// Ordering is creation time descending with id ascending as the stable
// fallback for equal timestamps.
func (r *SwapRequestRepository) ListByStudent(ctx context.Context, studentID int64, sent bool, status *models.SwapRequestStatus) ([]*models.SwapRequest, error) {
	builder := requestWithProfiles()
	if sent {
		builder = builder.Where("sr.requester_id = ?", studentID)
	} else {
		builder = builder.Where("sr.target_id = ?", studentID)
	}
	if status != nil {
		builder = builder.Where("sr.status = ?", *status)
	}
	builder = builder.OrderBy("sr.created_at DESC", "sr.id ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var requests []*models.SwapRequest
	for rows.Next() {
		request, err := scanRequestWithProfiles(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swap request rows: %w", err)
	}

	return requests, nil
}

// Finalize moves a pending request into the terminal status without
// touching batches (reject / cancel). A request that already left pending
// yields ErrSwapRequestProcessed.
func (r *SwapRequestRepository) Finalize(ctx context.Context, id int64, status models.SwapRequestStatus) error {
	result, err := r.db.Exec(ctx, `
		UPDATE swap_requests
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
	`, status, id, models.SwapStatusPending)
	if err != nil {
		return fmt.Errorf("error updating swap request status: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing row from a processed one
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM swap_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking swap request: %w", err)
		}
		if !exists {
			return apperrors.ErrSwapRequestNotFound
		}
		return apperrors.ErrSwapRequestProcessed
	}

	return nil
}

// AcceptAndSwap atomically exchanges the two parties' current batches and
// marks the request accepted. The request row and both student rows are
// locked so a concurrent Accept or Cancel observes ErrSwapRequestProcessed
// instead of double-swapping.
func (r *SwapRequestRepository) AcceptAndSwap(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var requesterID, targetID int64
		var status models.SwapRequestStatus

		err := tx.QueryRow(ctx, `
			SELECT requester_id, target_id, status
			FROM swap_requests
			WHERE id = $1
			FOR UPDATE
		`, id).Scan(&requesterID, &targetID, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSwapRequestNotFound
			}
			return fmt.Errorf("error locking swap request: %w", err)
		}

		if status != models.SwapStatusPending {
			return apperrors.ErrSwapRequestProcessed
		}

		// Lock both student rows in id order so concurrent accepts on
		// overlapping pairs cannot deadlock
		firstID, secondID := requesterID, targetID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		batches := make(map[int64]models.Batch, 2)
		rows, err := tx.Query(ctx, `
			SELECT id, current_batch FROM students
			WHERE id = ANY($1::bigint[])
			ORDER BY id
			FOR UPDATE
		`, []int64{firstID, secondID})
		if err != nil {
			return fmt.Errorf("error locking students: %w", err)
		}
		for rows.Next() {
			var studentID int64
			var batch models.Batch
			if err := rows.Scan(&studentID, &batch); err != nil {
				rows.Close()
				return fmt.Errorf("error scanning student batch: %w", err)
			}
			batches[studentID] = batch
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating student rows: %w", err)
		}
		if len(batches) != 2 {
			return apperrors.ErrStudentNotFound
		}

		if _, err := tx.Exec(ctx, `
			UPDATE students SET current_batch = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
		`, batches[targetID], requesterID); err != nil {
			return fmt.Errorf("error updating requester batch: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE students SET current_batch = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
		`, batches[requesterID], targetID); err != nil {
			return fmt.Errorf("error updating target batch: %w", err)
		}

		result, err := tx.Exec(ctx, `
			UPDATE swap_requests
			SET status = $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2 AND status = $3
		`, models.SwapStatusAccepted, id, models.SwapStatusPending)
		if err != nil {
			return fmt.Errorf("error accepting swap request: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrSwapRequestProcessed
		}

		return nil
	})
}
