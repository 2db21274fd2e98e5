package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/internal/domain"
)

const effortTable = "alocacao_esforco_cliente_cargo"

// EffortRepository mantém as alocações de esforço por faturamento. A listagem
// aceita um Queryer para servir tanto a API quanto o batch transacional.
type EffortRepository interface {
	ListByInvoice(ctx context.Context, q postgres.Queryer, invoiceID int) ([]*domain.EffortAllocation, error)
	Upsert(ctx context.Context, q postgres.Queryer, alloc *domain.EffortAllocation) (*domain.EffortAllocation, error)
	Delete(ctx context.Context, id int) (*domain.EffortAllocation, error)
}

type effortRepository struct {
	conn *postgres.Connection
}

func NewEffortRepository(conn *postgres.Connection) EffortRepository {
	return &effortRepository{conn: conn}
}

func effortListQuery(invoiceID int) (string, []interface{}, error) {
	return squirrel.
		Select(`ae.id, ae.faturamento_id, ae.setor_id, s.nome_setor, ae.cargo_id, c.nome_cargo,
			ae.quantidade_funcionarios, ae.total_horas_gastas_cargo, ae.registrado_por_usuario_id,
			COALESCE(u.nome, ''), ae.data_registro`).
		From(effortTable + " ae").
		Join("setores s ON ae.setor_id = s.id_setor").
		Join("cargos c ON ae.cargo_id = c.id_cargo").
		LeftJoin("usuarios u ON ae.registrado_por_usuario_id = u.id").
		Where(squirrel.Eq{"ae.faturamento_id": invoiceID}).
		OrderBy("s.nome_setor, c.nome_cargo").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *effortRepository) ListByInvoice(ctx context.Context, q postgres.Queryer, invoiceID int) ([]*domain.EffortAllocation, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := effortListQuery(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	allocations := make([]*domain.EffortAllocation, 0)
	for rows.Next() {
		alloc := &domain.EffortAllocation{}
		err := rows.Scan(
			&alloc.ID,
			&alloc.InvoiceID,
			&alloc.SectorID,
			&alloc.SectorName,
			&alloc.RoleID,
			&alloc.RoleName,
			&alloc.Headcount,
			&alloc.TotalHours,
			&alloc.RecordedByUserID,
			&alloc.RecordedByName,
			&alloc.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alocação de esforço: %w", err)
		}
		allocations = append(allocations, alloc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return allocations, nil
}

func effortUpsertQuery(alloc *domain.EffortAllocation) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(effortTable).
		Columns("faturamento_id", "setor_id", "cargo_id", "quantidade_funcionarios", "total_horas_gastas_cargo", "registrado_por_usuario_id", "data_registro").
		Values(alloc.InvoiceID, alloc.SectorID, alloc.RoleID, alloc.Headcount, alloc.TotalHours, alloc.RecordedByUserID, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (faturamento_id, setor_id, cargo_id) DO UPDATE SET
				quantidade_funcionarios = EXCLUDED.quantidade_funcionarios,
				total_horas_gastas_cargo = EXCLUDED.total_horas_gastas_cargo,
				registrado_por_usuario_id = EXCLUDED.registrado_por_usuario_id,
				data_registro = NOW()
			RETURNING id, faturamento_id, setor_id, cargo_id, quantidade_funcionarios, total_horas_gastas_cargo, registrado_por_usuario_id, data_registro
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *effortRepository) Upsert(ctx context.Context, q postgres.Queryer, alloc *domain.EffortAllocation) (*domain.EffortAllocation, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := effortUpsertQuery(alloc)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved := &domain.EffortAllocation{}
	err = q.QueryRow(ctx, query, args...).Scan(
		&saved.ID,
		&saved.InvoiceID,
		&saved.SectorID,
		&saved.RoleID,
		&saved.Headcount,
		&saved.TotalHours,
		&saved.RecordedByUserID,
		&saved.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar alocação de esforço: %w", err)
	}

	return saved, nil
}

// Delete remove uma alocação e devolve o registro removido, ou nil se não
// existia (para o handler responder 404 e o audit log registrar o que saiu).
func (r *effortRepository) Delete(ctx context.Context, id int) (*domain.EffortAllocation, error) {
	query, args, err := squirrel.
		Delete(effortTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, faturamento_id, setor_id, cargo_id, quantidade_funcionarios, total_horas_gastas_cargo, registrado_por_usuario_id, data_registro").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	deleted := &domain.EffortAllocation{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&deleted.ID,
		&deleted.InvoiceID,
		&deleted.SectorID,
		&deleted.RoleID,
		&deleted.Headcount,
		&deleted.TotalHours,
		&deleted.RecordedByUserID,
		&deleted.RecordedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao excluir alocação de esforço: %w", err)
	}

	return deleted, nil
}
