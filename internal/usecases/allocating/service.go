package allocating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/log"
)

var (
	ErrInvoiceNotFound    = errors.New("faturamento não encontrado")
	ErrAllocationNotFound = errors.New("alocação de esforço não encontrada")
	ErrInvalidHeadcount   = errors.New("quantidade de funcionários inválida")
	ErrInvalidHours       = errors.New("total de horas inválido")
	ErrEmptyBatch         = errors.New("nenhuma alocação informada")
)

// Allocator mantém as alocações de esforço (setor/cargo → headcount e horas)
// por faturamento, o segundo insumo do motor de análise.
type Allocator interface {
	ListByInvoice(ctx context.Context, invoiceID int) ([]*domain.EffortAllocation, error)
	SaveBatch(ctx context.Context, invoiceID int, inputs []domain.EffortAllocationInput, actor *domain.Claims) ([]*domain.EffortAllocation, error)
	Delete(ctx context.Context, allocationID int, actor *domain.Claims) error
}

type Service struct {
	conn              postgres.Conn
	effortRepository  repository.EffortRepository
	invoiceRepository repository.InvoiceRepository
	auditor           auditing.Auditor
}

func NewService(conn postgres.Conn, effortRepo repository.EffortRepository, invoiceRepo repository.InvoiceRepository, auditor auditing.Auditor) Allocator {
	return &Service{
		conn:              conn,
		effortRepository:  effortRepo,
		invoiceRepository: invoiceRepo,
		auditor:           auditor,
	}
}

func (s *Service) ListByInvoice(ctx context.Context, invoiceID int) ([]*domain.EffortAllocation, error) {
	invoice, err := s.invoiceRepository.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return s.effortRepository.ListByInvoice(ctx, nil, invoiceID)
}

// SaveBatch grava o lote de alocações do faturamento em uma transação.
func (s *Service) SaveBatch(ctx context.Context, invoiceID int, inputs []domain.EffortAllocationInput, actor *domain.Claims) ([]*domain.EffortAllocation, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	for _, input := range inputs {
		if input.Headcount < 0 {
			return nil, fmt.Errorf("%w: setor %d, cargo %d", ErrInvalidHeadcount, input.SectorID, input.RoleID)
		}
		if input.TotalHours < 0 {
			return nil, fmt.Errorf("%w: setor %d, cargo %d", ErrInvalidHours, input.SectorID, input.RoleID)
		}
	}

	invoice, err := s.invoiceRepository.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	saved := make([]*domain.EffortAllocation, 0, len(inputs))
	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		q := postgres.NewTxQueryer(tx)

		for _, input := range inputs {
			alloc := &domain.EffortAllocation{
				InvoiceID:        invoiceID,
				SectorID:         input.SectorID,
				RoleID:           input.RoleID,
				Headcount:        input.Headcount,
				TotalHours:       input.TotalHours,
				RecordedByUserID: actor.UserID,
			}

			row, err := s.effortRepository.Upsert(ctx, q, alloc)
			if err != nil {
				return err
			}
			saved = append(saved, row)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"faturamento_id": invoiceID,
		"alocacoes":      len(saved),
	}).Info("alocações de esforço salvas")

	s.auditor.Record(ctx, actor, domain.ActionEffortSavedBatch, domain.EntityEffortAllocation, auditing.EntityID(invoiceID), map[string]any{
		"faturamento_id":  invoiceID,
		"total_registros": len(saved),
	})

	return saved, nil
}

func (s *Service) Delete(ctx context.Context, allocationID int, actor *domain.Claims) error {
	deleted, err := s.effortRepository.Delete(ctx, allocationID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return ErrAllocationNotFound
	}

	s.auditor.Record(ctx, actor, domain.ActionEffortDeleted, domain.EntityEffortAllocation, auditing.EntityID(allocationID), map[string]any{
		"faturamento_id": deleted.InvoiceID,
		"setor_id":       deleted.SectorID,
		"cargo_id":       deleted.RoleID,
	})

	return nil
}
