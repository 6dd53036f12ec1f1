package service

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/pkg/requestid"

	"github.com/sirupsen/logrus"
)

// Audit actions
const (
	AuditActionUserSignup        = "user.signup"
	AuditActionUserLogin         = "user.login"
	AuditActionUserLoginFailed   = "user.login_failed"
	AuditActionUserLogout        = "user.logout"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAccessDenied      = "access.denied"
)

// AuditService writes an audit trail of security relevant events to the structured log.
type AuditService interface {
	Record(ctx context.Context, actor *entity.Identity, action string, entityName string, entityID string)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

func (s *auditService) Record(ctx context.Context, actor *entity.Identity, action string, entityName string, entityID string) {
	fields := logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
	}
	if actor != nil {
		fields["actor_id"] = actor.ID
		fields["actor_role"] = actor.Role.String()
	}
	if id, ok := requestid.FromContext(ctx); ok {
		fields["request_id"] = id
	}

	entry := s.log.WithContext(ctx).WithFields(fields)
	if action == AuditActionAccessDenied || action == AuditActionUserLoginFailed {
		entry.Warn("audit event")
		return
	}
	entry.Info("audit event")
}
