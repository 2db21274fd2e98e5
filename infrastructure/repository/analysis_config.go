package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/internal/domain"
)

const (
	globalConfigTable = "configuracao_analise_global_mensal"
	salaryConfigTable = "configuracoes_salario_cargo_mensal"
)

// AnalysisConfigRepository dá acesso aos parâmetros globais mensais e à tabela
// de salários por setor/cargo. As leituras usadas pelo motor recebem um
// Queryer para rodar dentro da transação do batch.
type AnalysisConfigRepository interface {
	GetGlobalConfig(ctx context.Context, q postgres.Queryer, month time.Time) (*domain.GlobalAnalysisConfig, error)
	UpsertGlobalConfig(ctx context.Context, cfg *domain.GlobalAnalysisConfig) (*domain.GlobalAnalysisConfig, error)
	GetSalaryTable(ctx context.Context, q postgres.Queryer, month time.Time) (domain.SalaryTable, error)
	ListSalaryConfigs(ctx context.Context, month time.Time) ([]*domain.SalaryConfig, error)
	UpsertSalaryConfig(ctx context.Context, q postgres.Queryer, cfg *domain.SalaryConfig) (*domain.SalaryConfig, error)
}

type analysisConfigRepository struct {
	conn *postgres.Connection
}

func NewAnalysisConfigRepository(conn *postgres.Connection) AnalysisConfigRepository {
	return &analysisConfigRepository{conn: conn}
}

// GetGlobalConfig retorna nil (sem erro) quando o mês não possui configuração.
func (r *analysisConfigRepository) GetGlobalConfig(ctx context.Context, q postgres.Queryer, month time.Time) (*domain.GlobalAnalysisConfig, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.
		Select("mes_ano_referencia, percentual_margem_lucro_desejada, fator_horas_mensal_padrao, definido_por_usuario_id, data_modificacao").
		From(globalConfigTable).
		Where(squirrel.Eq{"mes_ano_referencia": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg := &domain.GlobalAnalysisConfig{}
	err = q.QueryRow(ctx, query, args...).Scan(
		&cfg.ReferenceMonth,
		&cfg.DesiredMarginPct,
		&cfg.MonthlyHoursFactor,
		&cfg.DefinedByUserID,
		&cfg.ModifiedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar configuração global: %w", err)
	}

	return cfg, nil
}

func (r *analysisConfigRepository) UpsertGlobalConfig(ctx context.Context, cfg *domain.GlobalAnalysisConfig) (*domain.GlobalAnalysisConfig, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(globalConfigTable).
		Columns("mes_ano_referencia", "percentual_margem_lucro_desejada", "fator_horas_mensal_padrao", "definido_por_usuario_id", "data_modificacao").
		Values(cfg.ReferenceMonth, cfg.DesiredMarginPct, cfg.MonthlyHoursFactor, cfg.DefinedByUserID, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (mes_ano_referencia) DO UPDATE SET
				percentual_margem_lucro_desejada = EXCLUDED.percentual_margem_lucro_desejada,
				fator_horas_mensal_padrao = EXCLUDED.fator_horas_mensal_padrao,
				definido_por_usuario_id = EXCLUDED.definido_por_usuario_id,
				data_modificacao = NOW()
			RETURNING mes_ano_referencia, percentual_margem_lucro_desejada, fator_horas_mensal_padrao, definido_por_usuario_id, data_modificacao
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved := &domain.GlobalAnalysisConfig{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&saved.ReferenceMonth,
		&saved.DesiredMarginPct,
		&saved.MonthlyHoursFactor,
		&saved.DefinedByUserID,
		&saved.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar configuração global: %w", err)
	}

	return saved, nil
}

// GetSalaryTable monta a tabela de consulta (setor, cargo) -> salário base,
// construída uma única vez por execução do batch.
func (r *analysisConfigRepository) GetSalaryTable(ctx context.Context, q postgres.Queryer, month time.Time) (domain.SalaryTable, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.
		Select("setor_id, cargo_id, salario_mensal_base").
		From(salaryConfigTable).
		Where(squirrel.Eq{"mes_ano_referencia": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	table := make(domain.SalaryTable)
	for rows.Next() {
		var key domain.SalaryKey
		var salary float64
		if err := rows.Scan(&key.SectorID, &key.RoleID, &salary); err != nil {
			return nil, fmt.Errorf("erro ao escanear salário configurado: %w", err)
		}
		table[key] = salary
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return table, nil
}

func (r *analysisConfigRepository) ListSalaryConfigs(ctx context.Context, month time.Time) ([]*domain.SalaryConfig, error) {
	query, args, err := squirrel.
		Select("cscm.id, cscm.mes_ano_referencia, cscm.setor_id, s.nome_setor, cscm.cargo_id, c.nome_cargo, cscm.salario_mensal_base, cscm.definido_por_usuario_id, cscm.data_modificacao").
		From(salaryConfigTable + " cscm").
		Join("setores s ON cscm.setor_id = s.id_setor").
		Join("cargos c ON cscm.cargo_id = c.id_cargo").
		Where(squirrel.Eq{"cscm.mes_ano_referencia": month}).
		OrderBy("s.nome_setor, c.nome_cargo").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.SalaryConfig, 0)
	for rows.Next() {
		cfg := &domain.SalaryConfig{}
		err := rows.Scan(
			&cfg.ID,
			&cfg.ReferenceMonth,
			&cfg.SectorID,
			&cfg.SectorName,
			&cfg.RoleID,
			&cfg.RoleName,
			&cfg.BaseSalary,
			&cfg.DefinedByUserID,
			&cfg.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de salário: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *analysisConfigRepository) UpsertSalaryConfig(ctx context.Context, q postgres.Queryer, cfg *domain.SalaryConfig) (*domain.SalaryConfig, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(salaryConfigTable).
		Columns("mes_ano_referencia", "setor_id", "cargo_id", "salario_mensal_base", "definido_por_usuario_id", "data_modificacao").
		Values(cfg.ReferenceMonth, cfg.SectorID, cfg.RoleID, cfg.BaseSalary, cfg.DefinedByUserID, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (mes_ano_referencia, setor_id, cargo_id) DO UPDATE SET
				salario_mensal_base = EXCLUDED.salario_mensal_base,
				definido_por_usuario_id = EXCLUDED.definido_por_usuario_id,
				data_modificacao = NOW()
			RETURNING id, mes_ano_referencia, setor_id, cargo_id, salario_mensal_base, definido_por_usuario_id, data_modificacao
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved := &domain.SalaryConfig{}
	err = q.QueryRow(ctx, query, args...).Scan(
		&saved.ID,
		&saved.ReferenceMonth,
		&saved.SectorID,
		&saved.RoleID,
		&saved.BaseSalary,
		&saved.DefinedByUserID,
		&saved.ModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar configuração de salário: %w", err)
	}

	return saved, nil
}
