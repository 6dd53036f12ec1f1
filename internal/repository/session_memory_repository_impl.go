package repository

import (
	"context"
	"sync"
	"time"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
)

type memorySession struct {
	identity  entity.Identity
	expiresAt time.Time // zero: never
}

// memorySessionRepository keeps live sessions in-process.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessionRepository() domainRepo.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, sessionID string, identity entity.Identity, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[sessionID]; ok && !r.expired(existing) {
		return false, nil
	}

	session := memorySession{identity: identity}
	if ttl > 0 {
		session.expiresAt = r.now().Add(ttl)
	}
	r.sessions[sessionID] = session
	return true, nil
}

func (r *memorySessionRepository) Find(ctx context.Context, sessionID string) (*entity.Identity, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok || r.expired(session) {
		return nil, nil
	}
	identity := session.identity
	return &identity, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *memorySessionRepository) expired(s memorySession) bool {
	return !s.expiresAt.IsZero() && !r.now().Before(s.expiresAt)
}
