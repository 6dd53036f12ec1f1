package repository

import (
	"context"
	"time"

	"go-healthcare-records/internal/domain/entity"
)

// SessionRepository is the live token table. A zero ttl stores a session that never expires.
type SessionRepository interface {
	// Create binds sessionID to identity and reports false if the id is already live.
	Create(ctx context.Context, sessionID string, identity entity.Identity, ttl time.Duration) (bool, error)
	// Find returns nil when the session is unknown or expired.
	Find(ctx context.Context, sessionID string) (*entity.Identity, error)
	Delete(ctx context.Context, sessionID string) error
}
