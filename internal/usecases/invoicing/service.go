package invoicing

import (
	"context"
	"errors"
	"strconv"

	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/log"
	"github.com/mapia/backoffice-api/pkg/utils"
)

var (
	ErrInvoiceNotFound = errors.New("faturamento não encontrado")
	ErrInvalidAmount   = errors.New("valor de faturamento inválido")
	ErrInvalidClient   = errors.New("cliente inválido")
)

// InvoiceInput é o payload de criação/atualização de um faturamento.
type InvoiceInput struct {
	ClientID int     `json:"cliente_id"`
	MesAno   string  `json:"mes_ano"`
	Amount   float64 `json:"valor_faturamento"`
}

// Invoicer mantém os registros de faturamento mensal por cliente.
type Invoicer interface {
	Create(ctx context.Context, input InvoiceInput, actor *domain.Claims) (*domain.InvoiceRecord, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceRecord, error)
	Update(ctx context.Context, invoiceID int, input InvoiceInput, actor *domain.Claims) (*domain.InvoiceRecord, error)
	Delete(ctx context.Context, invoiceID int, actor *domain.Claims) error
}

type Service struct {
	invoiceRepository repository.InvoiceRepository
	auditor           auditing.Auditor
}

func NewService(invoiceRepo repository.InvoiceRepository, auditor auditing.Auditor) Invoicer {
	return &Service{invoiceRepository: invoiceRepo, auditor: auditor}
}

func (s *Service) Create(ctx context.Context, input InvoiceInput, actor *domain.Claims) (*domain.InvoiceRecord, error) {
	invoice, err := s.buildInvoice(input, actor)
	if err != nil {
		return nil, err
	}

	saved, err := s.invoiceRepository.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"faturamento_id": saved.ID,
		"cliente_id":     saved.ClientID,
		"mes_ano":        utils.FormatReferenceMonth(saved.ReferenceMonth),
	}).Info("faturamento registrado")

	s.auditor.Record(ctx, actor, domain.ActionInvoiceCreated, domain.EntityInvoice, auditing.EntityID(saved.ID), map[string]any{
		"cliente_id":        saved.ClientID,
		"mes_ano":           utils.FormatReferenceMonth(saved.ReferenceMonth),
		"valor_faturamento": saved.Amount,
	})

	return saved, nil
}

func (s *Service) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceRecord, error) {
	return s.invoiceRepository.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, invoiceID int, input InvoiceInput, actor *domain.Claims) (*domain.InvoiceRecord, error) {
	invoice, err := s.buildInvoice(input, actor)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID

	saved, err := s.invoiceRepository.Update(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrInvoiceNotFound
	}

	s.auditor.Record(ctx, actor, domain.ActionInvoiceUpdated, domain.EntityInvoice, auditing.EntityID(saved.ID), map[string]any{
		"cliente_id":        saved.ClientID,
		"mes_ano":           utils.FormatReferenceMonth(saved.ReferenceMonth),
		"valor_faturamento": saved.Amount,
	})

	return saved, nil
}

func (s *Service) Delete(ctx context.Context, invoiceID int, actor *domain.Claims) error {
	deleted, err := s.invoiceRepository.Delete(ctx, invoiceID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return ErrInvoiceNotFound
	}

	s.auditor.Record(ctx, actor, domain.ActionInvoiceDeleted, domain.EntityInvoice, auditing.EntityID(invoiceID), map[string]any{
		"cliente_id": deleted.ClientID,
		"mes_ano":    utils.FormatReferenceMonth(deleted.ReferenceMonth),
	})

	return nil
}

func (s *Service) buildInvoice(input InvoiceInput, actor *domain.Claims) (*domain.InvoiceRecord, error) {
	if input.ClientID <= 0 {
		return nil, ErrInvalidClient
	}
	if input.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	month, err := utils.ParseReferenceMonth(input.MesAno)
	if err != nil {
		return nil, err
	}

	return &domain.InvoiceRecord{
		ClientID:        input.ClientID,
		ReferenceMonth:  month.UTC(),
		Amount:          input.Amount,
		CreatedByUserID: actor.UserID,
		UpdatedByUserID: actor.UserID,
	}, nil
}

// Filtro de listagem a partir da query string, valores ausentes viram zero.
func BuildFilter(yearStr, monthStr, search string) domain.InvoiceFilter {
	filter := domain.InvoiceFilter{Search: search}
	if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
		filter.Year = y
	}
	if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
		filter.Month = m
	}
	return filter
}
