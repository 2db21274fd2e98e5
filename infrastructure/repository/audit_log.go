package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/internal/domain"
)

// AuditLogRepository grava a trilha de auditoria. A gravação é best-effort:
// falhas aqui são logadas pelo chamador e nunca revertem a operação principal.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLog) error
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{conn: conn}
}

func (r *auditLogRepository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	var details any
	if entry.Details != nil {
		payload, err := jsoniter.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("erro ao serializar detalhes da auditoria: %w", err)
		}
		details = payload
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("audit_logs").
		Columns("user_id", "user_email", "action_type", "entity_type", "entity_id", "details").
		Values(entry.UserID, entry.UserEmail, entry.ActionType, entry.EntityType, entry.EntityID, details).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar auditoria: %w", err)
	}

	return nil
}
