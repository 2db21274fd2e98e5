package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/internal/domain"
)

const analysesTable = "analises_contratuais_cliente"

const analysisColumns = `id, faturamento_id, cliente_id, mes_ano_referencia,
	valor_faturamento_cliente_mes, custo_total_mao_de_obra_calculado,
	custo_total_base_para_margem_calculado, percentual_margem_lucro_aplicada,
	valor_ideal_calculado_com_margem, valor_contrato_atual_cliente_input_gerente,
	diferenca_analise, status_alerta, data_analise_gerada,
	analise_realizada_por_usuario_id, created_by_user_id, updated_by_user_id,
	created_at, updated_at`

// AnalysisRepository persiste os resultados do motor de análise contratual.
// As operações que participam do batch ou do lock de edição recebem o Queryer
// da transação em andamento.
type AnalysisRepository interface {
	// Upsert grava a análise de um faturamento. Os campos calculados sempre
	// são sobrescritos; o valor de contrato informado pelo gerente é
	// preservado via COALESCE(valor existente, semente do mês anterior).
	Upsert(ctx context.Context, q postgres.Queryer, analysis *domain.ContractAnalysis, seedValue *float64) (*domain.ContractAnalysis, error)

	// GetManagerValue busca o valor de contrato informado na análise de um
	// cliente em um mês. Retorna nil quando não há análise ou valor.
	GetManagerValue(ctx context.Context, q postgres.Queryer, clientID int, month time.Time) (*float64, error)

	// GetForUpdate carrega a análise travando a linha (FOR UPDATE) para a
	// edição do valor de contrato sob concorrência.
	GetForUpdate(ctx context.Context, q postgres.Queryer, analysisID int) (*domain.ContractAnalysis, error)

	UpdateContractValue(ctx context.Context, q postgres.Queryer, analysisID int, value, difference float64, status string, userID int) (*domain.ContractAnalysis, error)

	ListByMonth(ctx context.Context, month time.Time) ([]*domain.ContractAnalysis, error)
}

type analysisRepository struct {
	conn *postgres.Connection
}

func NewAnalysisRepository(conn *postgres.Connection) AnalysisRepository {
	return &analysisRepository{conn: conn}
}

func (r *analysisRepository) Upsert(ctx context.Context, q postgres.Queryer, analysis *domain.ContractAnalysis, seedValue *float64) (*domain.ContractAnalysis, error) {
	if q == nil {
		q = r.conn
	}

	// Na inserção, diferença e status saem da semente (herdada do mês
	// anterior, possivelmente nula). No conflito, o COALESCE dá prioridade ao
	// valor já presente na linha: uma reexecução do batch nunca apaga o que o
	// gerente informou.
	seedOrZero := 0.0
	if seedValue != nil {
		seedOrZero = *seedValue
	}
	insertDifference := seedOrZero - analysis.IdealValue
	insertStatus := domain.AlertOK
	if insertDifference < 0 {
		insertStatus = domain.AlertReviewContract
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(analysesTable).
		Columns(
			"faturamento_id", "cliente_id", "mes_ano_referencia",
			"valor_faturamento_cliente_mes", "custo_total_mao_de_obra_calculado",
			"custo_total_base_para_margem_calculado", "percentual_margem_lucro_aplicada",
			"valor_ideal_calculado_com_margem", "data_analise_gerada",
			"analise_realizada_por_usuario_id",
			"valor_contrato_atual_cliente_input_gerente",
			"diferenca_analise", "status_alerta",
			"created_by_user_id", "updated_by_user_id",
		).
		Values(
			analysis.InvoiceID, analysis.ClientID, analysis.ReferenceMonth,
			analysis.InvoiceAmount, analysis.LaborCost,
			analysis.CostBaseline, analysis.MarginPctApplied,
			analysis.IdealValue, squirrel.Expr("NOW()"),
			analysis.RunByUserID,
			seedValue,
			insertDifference, insertStatus,
			analysis.RunByUserID, analysis.RunByUserID,
		).
		Suffix(`
			ON CONFLICT (faturamento_id) DO UPDATE SET
				cliente_id = EXCLUDED.cliente_id,
				mes_ano_referencia = EXCLUDED.mes_ano_referencia,
				valor_faturamento_cliente_mes = EXCLUDED.valor_faturamento_cliente_mes,
				custo_total_mao_de_obra_calculado = EXCLUDED.custo_total_mao_de_obra_calculado,
				custo_total_base_para_margem_calculado = EXCLUDED.custo_total_base_para_margem_calculado,
				percentual_margem_lucro_aplicada = EXCLUDED.percentual_margem_lucro_aplicada,
				valor_ideal_calculado_com_margem = EXCLUDED.valor_ideal_calculado_com_margem,
				data_analise_gerada = NOW(),
				analise_realizada_por_usuario_id = EXCLUDED.analise_realizada_por_usuario_id,
				valor_contrato_atual_cliente_input_gerente = COALESCE(
					`+analysesTable+`.valor_contrato_atual_cliente_input_gerente,
					EXCLUDED.valor_contrato_atual_cliente_input_gerente
				),
				diferenca_analise = COALESCE(
					`+analysesTable+`.valor_contrato_atual_cliente_input_gerente,
					EXCLUDED.valor_contrato_atual_cliente_input_gerente, 0
				) - EXCLUDED.valor_ideal_calculado_com_margem,
				status_alerta = CASE
					WHEN COALESCE(
						`+analysesTable+`.valor_contrato_atual_cliente_input_gerente,
						EXCLUDED.valor_contrato_atual_cliente_input_gerente, 0
					) - EXCLUDED.valor_ideal_calculado_com_margem < 0 THEN '`+domain.AlertReviewContract+`'
					ELSE '`+domain.AlertOK+`'
				END,
				updated_by_user_id = EXCLUDED.updated_by_user_id,
				updated_at = NOW()
			RETURNING `+analysisColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := scanAnalysis(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar análise contratual: %w", err)
	}

	return saved, nil
}

func (r *analysisRepository) GetManagerValue(ctx context.Context, q postgres.Queryer, clientID int, month time.Time) (*float64, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.
		Select("valor_contrato_atual_cliente_input_gerente").
		From(analysesTable).
		Where(squirrel.Eq{"cliente_id": clientID, "mes_ano_referencia": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value sql.NullFloat64
	err = q.QueryRow(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar valor de contrato anterior: %w", err)
	}

	if !value.Valid {
		return nil, nil
	}
	return &value.Float64, nil
}

func (r *analysisRepository) GetForUpdate(ctx context.Context, q postgres.Queryer, analysisID int) (*domain.ContractAnalysis, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.
		Select(analysisColumns).
		From(analysesTable).
		Where(squirrel.Eq{"id": analysisID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	analysis, err := scanAnalysis(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar análise para edição: %w", err)
	}

	return analysis, nil
}

func (r *analysisRepository) UpdateContractValue(ctx context.Context, q postgres.Queryer, analysisID int, value, difference float64, status string, userID int) (*domain.ContractAnalysis, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.StatementBuilder.
		Update(analysesTable).
		Set("valor_contrato_atual_cliente_input_gerente", value).
		Set("diferenca_analise", difference).
		Set("status_alerta", status).
		Set("analise_realizada_por_usuario_id", userID).
		Set("updated_by_user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": analysisID}).
		Suffix("RETURNING " + analysisColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := scanAnalysis(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar valor de contrato: %w", err)
	}

	return saved, nil
}

func (r *analysisRepository) ListByMonth(ctx context.Context, month time.Time) ([]*domain.ContractAnalysis, error) {
	query, args, err := squirrel.
		Select(`ac.id, ac.faturamento_id, ac.cliente_id, cl.razao_social, cl.codigo,
			ac.mes_ano_referencia, ac.valor_faturamento_cliente_mes,
			ac.custo_total_mao_de_obra_calculado, ac.custo_total_base_para_margem_calculado,
			ac.percentual_margem_lucro_aplicada, ac.valor_ideal_calculado_com_margem,
			ac.valor_contrato_atual_cliente_input_gerente, ac.diferenca_analise, ac.status_alerta,
			ac.data_analise_gerada, ac.analise_realizada_por_usuario_id,
			COALESCE(u.nome, ''), COALESCE(uc.nome, ''), COALESCE(uu.nome, ''),
			ac.created_at, ac.updated_at`).
		From(analysesTable + " ac").
		Join("clientes cl ON ac.cliente_id = cl.id").
		LeftJoin("usuarios u ON ac.analise_realizada_por_usuario_id = u.id").
		LeftJoin("usuarios uc ON ac.created_by_user_id = uc.id").
		LeftJoin("usuarios uu ON ac.updated_by_user_id = uu.id").
		Where(squirrel.Eq{"ac.mes_ano_referencia": month}).
		OrderBy("cl.razao_social ASC").
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

	analyses := make([]*domain.ContractAnalysis, 0)
	for rows.Next() {
		analysis := &domain.ContractAnalysis{}
		var managerValue sql.NullFloat64
		err := rows.Scan(
			&analysis.ID,
			&analysis.InvoiceID,
			&analysis.ClientID,
			&analysis.ClientName,
			&analysis.ClientCode,
			&analysis.ReferenceMonth,
			&analysis.InvoiceAmount,
			&analysis.LaborCost,
			&analysis.CostBaseline,
			&analysis.MarginPctApplied,
			&analysis.IdealValue,
			&managerValue,
			&analysis.Difference,
			&analysis.AlertStatus,
			&analysis.GeneratedAt,
			&analysis.RunByUserID,
			&analysis.RunByUserName,
			&analysis.CreatedByName,
			&analysis.UpdatedByName,
			&analysis.CreatedAt,
			&analysis.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear análise contratual: %w", err)
		}
		if managerValue.Valid {
			analysis.CurrentContractValue = &managerValue.Float64
		}
		analyses = append(analyses, analysis)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return analyses, nil
}

func scanAnalysis(row *sql.Row) (*domain.ContractAnalysis, error) {
	analysis := &domain.ContractAnalysis{}
	var managerValue sql.NullFloat64

	err := row.Scan(
		&analysis.ID,
		&analysis.InvoiceID,
		&analysis.ClientID,
		&analysis.ReferenceMonth,
		&analysis.InvoiceAmount,
		&analysis.LaborCost,
		&analysis.CostBaseline,
		&analysis.MarginPctApplied,
		&analysis.IdealValue,
		&managerValue,
		&analysis.Difference,
		&analysis.AlertStatus,
		&analysis.GeneratedAt,
		&analysis.RunByUserID,
		&analysis.CreatedByUserID,
		&analysis.UpdatedByUserID,
		&analysis.CreatedAt,
		&analysis.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if managerValue.Valid {
		analysis.CurrentContractValue = &managerValue.Float64
	}

	return analysis, nil
}
