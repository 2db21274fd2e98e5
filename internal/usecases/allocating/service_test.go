package allocating

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/infrastructure/repository/mocks"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
)

type fakeConn struct{}

func (fakeConn) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (fakeConn) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (fakeConn) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (fakeConn) Close() error { return nil }

func (fakeConn) Ping(context.Context) error { return nil }

func (fakeConn) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func newService(ctrl *gomock.Controller) (*Service, *mocks.MockEffortRepository, *mocks.MockInvoiceRepository) {
	effortRepo := mocks.NewMockEffortRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &Service{
		conn:              fakeConn{},
		effortRepository:  effortRepo,
		invoiceRepository: invoiceRepo,
		auditor:           auditing.NewService(auditRepo),
	}, effortRepo, invoiceRepo
}

func TestService_SaveBatch(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Gerente", UserRoleID: 2}
	invoice := &domain.InvoiceRecord{
		ID:             10,
		ClientID:       7,
		ReferenceMonth: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:         5000,
	}

	tests := []struct {
		name    string
		inputs  []domain.EffortAllocationInput
		setup   func(effortRepo *mocks.MockEffortRepository, invoiceRepo *mocks.MockInvoiceRepository)
		wantErr error
		want    int
	}{
		{
			name: "Lote válido grava todas as alocações do faturamento",
			inputs: []domain.EffortAllocationInput{
				{SectorID: 1, RoleID: 1, Headcount: 2, TotalHours: 100},
				{SectorID: 1, RoleID: 2, Headcount: 1, TotalHours: 40},
			},
			setup: func(effortRepo *mocks.MockEffortRepository, invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetByID(gomock.Any(), 10).Return(invoice, nil)
				effortRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ postgres.Queryer, alloc *domain.EffortAllocation) (*domain.EffortAllocation, error) {
						assert.Equal(t, 10, alloc.InvoiceID)
						assert.Equal(t, 42, alloc.RecordedByUserID)
						return alloc, nil
					}).
					Times(2)
			},
			want: 2,
		},
		{
			name: "Faturamento inexistente rejeita o lote",
			inputs: []domain.EffortAllocationInput{
				{SectorID: 1, RoleID: 1, Headcount: 1, TotalHours: 10},
			},
			setup: func(_ *mocks.MockEffortRepository, invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)
			},
			wantErr: ErrInvoiceNotFound,
		},
		{
			name: "Headcount negativo é rejeitado antes de tocar o banco",
			inputs: []domain.EffortAllocationInput{
				{SectorID: 1, RoleID: 1, Headcount: -1, TotalHours: 10},
			},
			setup:   func(*mocks.MockEffortRepository, *mocks.MockInvoiceRepository) {},
			wantErr: ErrInvalidHeadcount,
		},
		{
			name: "Horas negativas são rejeitadas antes de tocar o banco",
			inputs: []domain.EffortAllocationInput{
				{SectorID: 1, RoleID: 1, Headcount: 1, TotalHours: -5},
			},
			setup:   func(*mocks.MockEffortRepository, *mocks.MockInvoiceRepository) {},
			wantErr: ErrInvalidHours,
		},
		{
			name:    "Lote vazio é rejeitado",
			inputs:  nil,
			setup:   func(*mocks.MockEffortRepository, *mocks.MockInvoiceRepository) {},
			wantErr: ErrEmptyBatch,
		},
		{
			name: "Falha no upsert interrompe o lote",
			inputs: []domain.EffortAllocationInput{
				{SectorID: 1, RoleID: 1, Headcount: 1, TotalHours: 10},
			},
			setup: func(effortRepo *mocks.MockEffortRepository, invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetByID(gomock.Any(), 10).Return(invoice, nil)
				effortRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, effortRepo, invoiceRepo := newService(ctrl)
			tt.setup(effortRepo, invoiceRepo)

			saved, err := service.SaveBatch(context.Background(), 10, tt.inputs, actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, saved, tt.want)
		})
	}
}

func TestService_Delete(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Gerente", UserRoleID: 2}

	t.Run("Alocação existente é removida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, effortRepo, _ := newService(ctrl)
		effortRepo.EXPECT().Delete(gomock.Any(), 5).
			Return(&domain.EffortAllocation{ID: 5, InvoiceID: 10, SectorID: 1, RoleID: 1}, nil)

		assert.NoError(t, service.Delete(context.Background(), 5, actor))
	})

	t.Run("Alocação inexistente retorna erro de não encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, effortRepo, _ := newService(ctrl)
		effortRepo.EXPECT().Delete(gomock.Any(), 99).Return(nil, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), 99, actor), ErrAllocationNotFound)
	})
}

func TestService_ListByInvoice(t *testing.T) {
	t.Run("Faturamento inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)

		allocations, err := service.ListByInvoice(context.Background(), 10)

		assert.ErrorIs(t, err, ErrInvoiceNotFound)
		assert.Nil(t, allocations)
	})

	t.Run("Alocações do faturamento são listadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, effortRepo, invoiceRepo := newService(ctrl)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), 10).
			Return(&domain.InvoiceRecord{ID: 10, ClientID: 7}, nil)
		effortRepo.EXPECT().ListByInvoice(gomock.Any(), nil, 10).
			Return([]*domain.EffortAllocation{{ID: 1}, {ID: 2}}, nil)

		allocations, err := service.ListByInvoice(context.Background(), 10)

		assert.NoError(t, err)
		assert.Len(t, allocations, 2)
	})
}
