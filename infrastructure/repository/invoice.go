package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/internal/domain"
)

const invoicesTable = "faturamentos"

// Erros de violação de restrição traduzidos para o domínio. Os handlers
// mapeiam para 409/400 sem expor o texto cru do banco.
var (
	ErrDuplicateInvoice = errors.New("já existe um faturamento para este cliente neste mês")
	ErrUnknownClient    = errors.New("cliente não encontrado")
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error)
	GetByID(ctx context.Context, id int) (*domain.InvoiceRecord, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceRecord, error)
	Update(ctx context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error)
	Delete(ctx context.Context, id int) (*domain.InvoiceRecord, error)
	ListWithEffortByMonth(ctx context.Context, q postgres.Queryer, month time.Time) ([]*domain.InvoiceRecord, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{conn: conn}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(invoicesTable).
		Columns("cliente_id", "mes_ano", "valor_faturamento", "created_by_user_id", "updated_by_user_id").
		Values(invoice.ClientID, invoice.ReferenceMonth, invoice.Amount, invoice.CreatedByUserID, invoice.CreatedByUserID).
		Suffix("RETURNING id, cliente_id, mes_ano, valor_faturamento, created_by_user_id, updated_by_user_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := r.scanInvoice(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateInvoiceError(err)
	}

	return saved, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int) (*domain.InvoiceRecord, error) {
	query, args, err := squirrel.
		Select("f.id, f.cliente_id, f.mes_ano, f.valor_faturamento, f.created_by_user_id, f.updated_by_user_id, f.created_at, f.updated_at").
		From(invoicesTable + " f").
		Where(squirrel.Eq{"f.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	invoice, err := r.scanInvoice(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar faturamento: %w", err)
	}

	return invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceRecord, error) {
	month := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)

	builder := squirrel.
		Select(`f.id, f.cliente_id, c.codigo, c.razao_social, f.mes_ano, f.valor_faturamento,
			COALESCE(uc.nome, ''), COALESCE(uu.nome, ''), f.created_at, f.updated_at`).
		From(invoicesTable + " f").
		Join("clientes c ON f.cliente_id = c.id").
		LeftJoin("usuarios uc ON f.created_by_user_id = uc.id").
		LeftJoin("usuarios uu ON f.updated_by_user_id = uu.id").
		Where(squirrel.Eq{"f.mes_ano": month})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"c.razao_social": pattern},
			squirrel.ILike{"c.codigo": pattern},
		})
	}

	query, args, err := builder.
		OrderBy("c.razao_social ASC", "f.id DESC").
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

	invoices := make([]*domain.InvoiceRecord, 0)
	for rows.Next() {
		invoice := &domain.InvoiceRecord{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.ClientID,
			&invoice.ClientCode,
			&invoice.ClientName,
			&invoice.ReferenceMonth,
			&invoice.Amount,
			&invoice.CreatedByName,
			&invoice.UpdatedByName,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear faturamento: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error) {
	query, args, err := squirrel.StatementBuilder.
		Update(invoicesTable).
		Set("valor_faturamento", invoice.Amount).
		Set("mes_ano", invoice.ReferenceMonth).
		Set("updated_by_user_id", invoice.UpdatedByUserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoice.ID}).
		Suffix("RETURNING id, cliente_id, mes_ano, valor_faturamento, created_by_user_id, updated_by_user_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := r.scanInvoice(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateInvoiceError(err)
	}

	return saved, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id int) (*domain.InvoiceRecord, error) {
	query, args, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, cliente_id, mes_ano, valor_faturamento, created_by_user_id, updated_by_user_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	deleted, err := r.scanInvoice(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao excluir faturamento: %w", err)
	}

	return deleted, nil
}

// ListWithEffortByMonth lista os faturamentos do mês que possuem ao menos uma
// alocação de esforço lançada; são estes que o motor de análise processa.
func (r *invoiceRepository) ListWithEffortByMonth(ctx context.Context, q postgres.Queryer, month time.Time) ([]*domain.InvoiceRecord, error) {
	if q == nil {
		q = r.conn
	}

	query, args, err := squirrel.
		Select("f.id, f.cliente_id, f.mes_ano, f.valor_faturamento").
		From(invoicesTable + " f").
		Where(squirrel.Eq{"f.mes_ano": month}).
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM " + effortTable + " ae WHERE ae.faturamento_id = f.id)")).
		OrderBy("f.id ASC").
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

	invoices := make([]*domain.InvoiceRecord, 0)
	for rows.Next() {
		invoice := &domain.InvoiceRecord{}
		err := rows.Scan(&invoice.ID, &invoice.ClientID, &invoice.ReferenceMonth, &invoice.Amount)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear faturamento: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) scanInvoice(row *sql.Row) (*domain.InvoiceRecord, error) {
	invoice := &domain.InvoiceRecord{}
	err := row.Scan(
		&invoice.ID,
		&invoice.ClientID,
		&invoice.ReferenceMonth,
		&invoice.Amount,
		&invoice.CreatedByUserID,
		&invoice.UpdatedByUserID,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// translateInvoiceError converte violações de restrição conhecidas em erros
// de domínio.
func translateInvoiceError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "faturamento_cliente_mes_ano_unico":
			return ErrDuplicateInvoice
		case "fk_faturamentos_cliente":
			return ErrUnknownClient
		}
	}
	return fmt.Errorf("erro ao gravar faturamento: %w", err)
}
