package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mapia/backoffice-api/infrastructure/repository/mocks"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/utils"
)

func newService(ctrl *gomock.Controller) (*Service, *mocks.MockInvoiceRepository) {
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &Service{
		invoiceRepository: invoiceRepo,
		auditor:           auditing.NewService(auditRepo),
	}, invoiceRepo
}

func TestService_Create(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Fiscal", UserRoleID: 4}

	tests := []struct {
		name    string
		input   InvoiceInput
		setup   func(invoiceRepo *mocks.MockInvoiceRepository)
		wantErr error
	}{
		{
			name:  "Faturamento válido é gravado com o mês normalizado",
			input: InvoiceInput{ClientID: 7, MesAno: "2025-03", Amount: 5000},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error) {
						assert.Equal(t, 7, invoice.ClientID)
						assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), invoice.ReferenceMonth)
						assert.Equal(t, 42, invoice.CreatedByUserID)
						invoice.ID = 10
						return invoice, nil
					})
			},
		},
		{
			name:    "Cliente inválido é rejeitado",
			input:   InvoiceInput{ClientID: 0, MesAno: "2025-03", Amount: 5000},
			setup:   func(*mocks.MockInvoiceRepository) {},
			wantErr: ErrInvalidClient,
		},
		{
			name:    "Valor negativo é rejeitado",
			input:   InvoiceInput{ClientID: 7, MesAno: "2025-03", Amount: -1},
			setup:   func(*mocks.MockInvoiceRepository) {},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "Mês em formato inválido é rejeitado",
			input:   InvoiceInput{ClientID: 7, MesAno: "03/2025", Amount: 5000},
			setup:   func(*mocks.MockInvoiceRepository) {},
			wantErr: utils.ErrInvalidReferenceMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, invoiceRepo := newService(ctrl)
			tt.setup(invoiceRepo)

			saved, err := service.Create(context.Background(), tt.input, actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 10, saved.ID)
		})
	}
}

func TestService_Update(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Fiscal", UserRoleID: 4}

	t.Run("Faturamento inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		saved, err := service.Update(context.Background(), 99, InvoiceInput{ClientID: 7, MesAno: "2025-03", Amount: 5000}, actor)

		assert.ErrorIs(t, err, ErrInvoiceNotFound)
		assert.Nil(t, saved)
	})

	t.Run("Atualização mantém o id do faturamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, invoice *domain.InvoiceRecord) (*domain.InvoiceRecord, error) {
				assert.Equal(t, 10, invoice.ID)
				return invoice, nil
			})

		saved, err := service.Update(context.Background(), 10, InvoiceInput{ClientID: 7, MesAno: "2025-03", Amount: 6000}, actor)

		assert.NoError(t, err)
		assert.Equal(t, 6000.0, saved.Amount)
	})
}

func TestService_Delete(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Fiscal", UserRoleID: 4}

	t.Run("Faturamento existente é removido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().Delete(gomock.Any(), 10).
			Return(&domain.InvoiceRecord{ID: 10, ClientID: 7, ReferenceMonth: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}, nil)

		assert.NoError(t, service.Delete(context.Background(), 10, actor))
	})

	t.Run("Faturamento inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().Delete(gomock.Any(), 99).Return(nil, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), 99, actor), ErrInvoiceNotFound)
	})
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		month    string
		search   string
		expected domain.InvoiceFilter
	}{
		{
			name:     "Ano e mês válidos",
			year:     "2025",
			month:    "3",
			search:   "acme",
			expected: domain.InvoiceFilter{Year: 2025, Month: 3, Search: "acme"},
		},
		{
			name:     "Valores ausentes viram zero",
			expected: domain.InvoiceFilter{},
		},
		{
			name:     "Mês fora do intervalo é ignorado",
			year:     "2025",
			month:    "13",
			expected: domain.InvoiceFilter{Year: 2025},
		},
		{
			name:     "Ano não numérico é ignorado",
			year:     "vinte e cinco",
			month:    "5",
			expected: domain.InvoiceFilter{Month: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildFilter(tt.year, tt.month, tt.search))
		})
	}
}
