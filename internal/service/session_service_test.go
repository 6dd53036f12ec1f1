package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-healthcare-records/config"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/repository"
	"go-healthcare-records/pkg/apperror"
	"go-healthcare-records/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kavya = entity.Identity{ID: "pat2", Name: "Kavya Singh", Email: "kavya.singh@email.com", Role: entity.RolePatient}

func newTestAuthority() *sessionAuthority {
	log := logrus.New()
	log.SetOutput(io.Discard)
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret"})
	return NewSessionAuthority(log, repository.NewMemorySessionRepository(), jwtService).(*sessionAuthority)
}

func TestSessionAuthorityIssueResolveRevoke(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()

	token, err := authority.Issue(ctx, kavya)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := authority.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, kavya, *identity)

	require.NoError(t, authority.Revoke(ctx, token))
	require.NoError(t, authority.Revoke(ctx, token))

	_, err = authority.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestSessionAuthorityTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()

	first, err := authority.Issue(ctx, kavya)
	require.NoError(t, err)
	second, err := authority.Issue(ctx, kavya)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, authority.Revoke(ctx, first))
	_, err = authority.Resolve(ctx, second)
	assert.NoError(t, err, "revoking one session leaves the other live")
}

func TestSessionAuthorityRetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()
	ids := []string{"same", "same", "other"}
	authority.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	_, err := authority.Issue(ctx, kavya)
	require.NoError(t, err)
	token, err := authority.Issue(ctx, entity.Identity{ID: "doc1", Role: entity.RoleDoctor})
	require.NoError(t, err)

	identity, err := authority.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "doc1", identity.ID)
	assert.Empty(t, ids)
}

func TestSessionAuthorityGivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()
	authority.newID = func() string { return "fixed" }

	_, err := authority.Issue(ctx, kavya)
	require.NoError(t, err)

	_, err = authority.Issue(ctx, kavya)
	assert.ErrorIs(t, err, ErrSessionUnavailable)
}

func TestSessionAuthorityRejectsUnknownTokens(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()

	_, err := authority.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)

	foreign := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret"})
	token, err := foreign.GenerateSessionToken("never-issued")
	require.NoError(t, err)
	_, err = authority.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	assert.NoError(t, authority.Revoke(ctx, "garbage"))
}

type failingSessionRepository struct {
	err error
}

func (r *failingSessionRepository) Create(ctx context.Context, sessionID string, identity entity.Identity, ttl time.Duration) (bool, error) {
	return true, nil
}

func (r *failingSessionRepository) Find(ctx context.Context, sessionID string) (*entity.Identity, error) {
	return nil, r.err
}

func (r *failingSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.err
}

func TestSessionAuthorityWrapsBackendFailures(t *testing.T) {
	ctx := context.Background()
	authority := newTestAuthority()
	backendErr := errors.New("connection refused")
	authority.sessionRepo = &failingSessionRepository{err: backendErr}

	token, err := authority.jwtService.GenerateSessionToken("s1")
	require.NoError(t, err)

	_, err = authority.Resolve(ctx, token)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, "Failed to resolve session", apperror.MessageOf(err, ""))

	err = authority.Revoke(ctx, token)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
