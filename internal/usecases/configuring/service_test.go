package configuring

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

func newService(ctrl *gomock.Controller) (*Service, *mocks.MockAnalysisConfigRepository) {
	configRepo := mocks.NewMockAnalysisConfigRepository(ctrl)

	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &Service{
		conn:             fakeConn{},
		configRepository: configRepo,
		auditor:          auditing.NewService(auditRepo),
	}, configRepo
}

func TestService_GetGlobalConfig(t *testing.T) {
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Configuração existente é retornada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, configRepo := newService(ctrl)
		expected := &domain.GlobalAnalysisConfig{ReferenceMonth: month, DesiredMarginPct: 20, MonthlyHoursFactor: 220}
		configRepo.EXPECT().GetGlobalConfig(gomock.Any(), nil, month).Return(expected, nil)

		cfg, err := service.GetGlobalConfig(context.Background(), time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC))

		assert.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Mês sem configuração retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, configRepo := newService(ctrl)
		configRepo.EXPECT().GetGlobalConfig(gomock.Any(), nil, month).Return(nil, nil)

		cfg, err := service.GetGlobalConfig(context.Background(), month)

		assert.ErrorIs(t, err, ErrGlobalConfigNotFound)
		assert.Nil(t, cfg)
	})
}

func TestService_SaveGlobalConfig(t *testing.T) {
	actor := &domain.Claims{UserID: 42, UserName: "Gerente", UserRoleID: 2}

	tests := []struct {
		name    string
		cfg     *domain.GlobalAnalysisConfig
		setup   func(configRepo *mocks.MockAnalysisConfigRepository)
		wantErr error
	}{
		{
			name: "Configuração válida é normalizada e gravada",
			cfg: &domain.GlobalAnalysisConfig{
				ReferenceMonth:     time.Date(2025, 3, 18, 14, 0, 0, 0, time.UTC),
				DesiredMarginPct:   20,
				MonthlyHoursFactor: 220,
			},
			setup: func(configRepo *mocks.MockAnalysisConfigRepository) {
				configRepo.EXPECT().
					UpsertGlobalConfig(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cfg *domain.GlobalAnalysisConfig) (*domain.GlobalAnalysisConfig, error) {
						assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), cfg.ReferenceMonth)
						assert.Equal(t, 42, cfg.DefinedByUserID)
						return cfg, nil
					})
			},
		},
		{
			name:    "Margem negativa é rejeitada",
			cfg:     &domain.GlobalAnalysisConfig{DesiredMarginPct: -1, MonthlyHoursFactor: 220},
			setup:   func(*mocks.MockAnalysisConfigRepository) {},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "Fator de horas zero é rejeitado",
			cfg:     &domain.GlobalAnalysisConfig{DesiredMarginPct: 20, MonthlyHoursFactor: 0},
			setup:   func(*mocks.MockAnalysisConfigRepository) {},
			wantErr: ErrInvalidHoursFactor,
		},
		{
			name:    "Margem zero é aceita",
			cfg:     &domain.GlobalAnalysisConfig{DesiredMarginPct: 0, MonthlyHoursFactor: 160},
			setup: func(configRepo *mocks.MockAnalysisConfigRepository) {
				configRepo.EXPECT().
					UpsertGlobalConfig(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cfg *domain.GlobalAnalysisConfig) (*domain.GlobalAnalysisConfig, error) {
						return cfg, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, configRepo := newService(ctrl)
			tt.setup(configRepo)

			saved, err := service.SaveGlobalConfig(context.Background(), tt.cfg, actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, saved)
		})
	}
}

func TestService_SaveSalaryConfigs(t *testing.T) {
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	actor := &domain.Claims{UserID: 42, UserName: "Gerente", UserRoleID: 2}

	tests := []struct {
		name    string
		inputs  []SalaryConfigInput
		setup   func(configRepo *mocks.MockAnalysisConfigRepository)
		wantErr error
		want    int
	}{
		{
			name: "Lote válido grava todas as combinações",
			inputs: []SalaryConfigInput{
				{SectorID: 1, RoleID: 1, BaseSalary: 4400},
				{SectorID: 1, RoleID: 2, BaseSalary: 6600},
			},
			setup: func(configRepo *mocks.MockAnalysisConfigRepository) {
				configRepo.EXPECT().
					UpsertSalaryConfig(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ postgres.Queryer, cfg *domain.SalaryConfig) (*domain.SalaryConfig, error) {
						assert.Equal(t, month, cfg.ReferenceMonth)
						assert.Equal(t, 42, cfg.DefinedByUserID)
						return cfg, nil
					}).
					Times(2)
			},
			want: 2,
		},
		{
			name: "Salário negativo aborta o lote inteiro antes de qualquer gravação",
			inputs: []SalaryConfigInput{
				{SectorID: 1, RoleID: 1, BaseSalary: 4400},
				{SectorID: 1, RoleID: 2, BaseSalary: -100},
			},
			setup:   func(*mocks.MockAnalysisConfigRepository) {},
			wantErr: ErrInvalidSalary,
		},
		{
			name:    "Lote vazio é rejeitado",
			inputs:  nil,
			setup:   func(*mocks.MockAnalysisConfigRepository) {},
			wantErr: ErrEmptySalaryBatch,
		},
		{
			name: "Falha em uma gravação interrompe o lote",
			inputs: []SalaryConfigInput{
				{SectorID: 1, RoleID: 1, BaseSalary: 4400},
			},
			setup: func(configRepo *mocks.MockAnalysisConfigRepository) {
				configRepo.EXPECT().
					UpsertSalaryConfig(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, configRepo := newService(ctrl)
			tt.setup(configRepo)

			saved, err := service.SaveSalaryConfigs(context.Background(), month, tt.inputs, actor)

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
