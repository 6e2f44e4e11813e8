// Package session provides the server-side session store backing the
// cookie-based login flow. A session binds at most one verified email plus
// the registration-pending flag to an opaque identifier.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Data is the state carried by one session.
type Data struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	NeedsRegistration bool   `json:"needsRegistration"`
}

// Store persists sessions keyed by their identifier. Implementations must
// return apperrors.ErrSessionNotFound for unknown or expired identifiers.
type Store interface {
	Save(ctx context.Context, id string, data Data) error
	Get(ctx context.Context, id string) (Data, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// NewID returns a fresh opaque session identifier.
func NewID() string {
	return uuid.NewString()
}
