package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisSessionRepository keeps sessions in Redis so they survive restarts and are
// shared between replicas.
type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func (r *redisSessionRepository) Create(ctx context.Context, sessionID string, identity entity.Identity, ttl time.Duration) (bool, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return false, err
	}
	if ttl < 0 {
		ttl = 0
	}
	return r.client.SetNX(ctx, sessionKey(sessionID), payload, ttl).Result()
}

func (r *redisSessionRepository) Find(ctx context.Context, sessionID string) (*entity.Identity, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity entity.Identity
	if err := json.Unmarshal(val, &identity); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &identity, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
