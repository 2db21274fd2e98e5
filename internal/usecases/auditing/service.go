package auditing

import (
	"context"
	"strconv"

	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/pkg/log"
)

// Auditor registra ações relevantes na trilha de auditoria.
type Auditor interface {
	// Record grava a entrada em best-effort: falha de auditoria é logada e
	// nunca propaga para a operação que a originou.
	Record(ctx context.Context, actor *domain.Claims, actionType, entityType string, entityID *string, details any)
}

type Service struct {
	auditLogRepository repository.AuditLogRepository
}

func NewService(auditLogRepo repository.AuditLogRepository) *Service {
	return &Service{auditLogRepository: auditLogRepo}
}

func (s *Service) Record(ctx context.Context, actor *domain.Claims, actionType, entityType string, entityID *string, details any) {
	entry := &domain.AuditLog{
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if actor != nil {
		userID := actor.UserID
		userEmail := actor.UserEmail
		entry.UserID = &userID
		entry.UserEmail = &userEmail
	}

	if err := s.auditLogRepository.Insert(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"action_type": actionType,
			"entity_type": entityType,
		}).Warn("falha ao gravar auditoria")
	}
}

// EntityID converte um id numérico para o formato textual da trilha.
func EntityID(id int) *string {
	v := strconv.Itoa(id)
	return &v
}
