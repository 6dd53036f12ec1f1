package service

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/pkg/apperror"
	"go-healthcare-records/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxIssueAttempts = 5

var (
	ErrInvalidSession     = apperror.Unauthorized("Invalid token")
	ErrSessionUnavailable = apperror.New(apperror.KindInternal, "Failed to allocate session")
)

// SessionAuthority issues bearer tokens and resolves them back to the caller identity.
type SessionAuthority interface {
	Issue(ctx context.Context, identity entity.Identity) (string, error)
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
	Revoke(ctx context.Context, token string) error
}

type sessionAuthority struct {
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
	newID       func() string
}

func NewSessionAuthority(log *logrus.Logger, sessionRepo repository.SessionRepository, jwtService *jwt.JWTService) SessionAuthority {
	return &sessionAuthority{
		log:         log,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		newID:       uuid.NewString,
	}
}

// Issue binds a fresh session id to identity, retrying on the rare id collision.
func (s *sessionAuthority) Issue(ctx context.Context, identity entity.Identity) (string, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		sessionID := s.newID()
		created, err := s.sessionRepo.Create(ctx, sessionID, identity, s.jwtService.GetSessionTTL())
		if err != nil {
			s.log.Warnf("Failed to store session: %+v", err)
			return "", err
		}
		if !created {
			continue
		}

		token, err := s.jwtService.GenerateSessionToken(sessionID)
		if err != nil {
			s.log.Warnf("Failed to sign session token: %+v", err)
			if delErr := s.sessionRepo.Delete(ctx, sessionID); delErr != nil {
				s.log.Warnf("Failed to drop unsigned session %s: %+v", sessionID, delErr)
			}
			return "", err
		}
		return token, nil
	}

	return "", ErrSessionUnavailable
}

func (s *sessionAuthority) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	sessionID, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	identity, err := s.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		s.log.Warnf("Failed to resolve session: %+v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to resolve session", err)
	}
	if identity == nil {
		return nil, ErrInvalidSession
	}
	return identity, nil
}

// Revoke is idempotent; unknown or malformed tokens are ignored.
func (s *sessionAuthority) Revoke(ctx context.Context, token string) error {
	sessionID, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		s.log.Warnf("Failed to revoke session: %+v", err)
		return apperror.Wrap(apperror.KindInternal, "Failed to revoke session", err)
	}
	return nil
}
