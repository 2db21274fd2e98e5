package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/analyzing"
	analyzingmocks "github.com/mapia/backoffice-api/internal/usecases/analyzing/mocks"
	"github.com/mapia/backoffice-api/pkg/middleware"
	"github.com/mapia/backoffice-api/pkg/utils"
)

func TestAnalysisSyncService_runPreviousMonthAnalysis(t *testing.T) {
	expectedMonth := utils.PreviousMonth(utils.FirstDayOfMonth(time.Now().UTC()))

	tests := []struct {
		name     string
		setup    func(analyzer *analyzingmocks.MockAnalyzer)
		hasError bool
	}{
		{
			name: "Gera a análise do mês fechado assinando como usuário de sistema",
			setup: func(analyzer *analyzingmocks.MockAnalyzer) {
				analyzer.EXPECT().
					GenerateMonthlyAnalysis(gomock.Any(), expectedMonth, gomock.Any()).
					DoAndReturn(func(_ context.Context, month time.Time, actor *domain.Claims) (*domain.AnalysisRunResult, error) {
						assert.Equal(t, 1, actor.UserID)
						assert.Equal(t, "sistema", actor.UserName)
						assert.Equal(t, middleware.RoleDev, actor.UserRoleID)
						return &domain.AnalysisRunResult{ReferenceMonth: month}, nil
					})
			},
		},
		{
			name: "Mês sem insumos não é erro fatal do agendador",
			setup: func(analyzer *analyzingmocks.MockAnalyzer) {
				analyzer.EXPECT().
					GenerateMonthlyAnalysis(gomock.Any(), expectedMonth, gomock.Any()).
					Return(nil, analyzing.ErrNoAnalyzableInvoices)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			service := &AnalysisSyncService{
				config:   AnalysisSyncConfig{SystemUserID: 1},
				analyzer: analyzer,
			}

			err := service.runPreviousMonthAnalysis(context.Background())

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysisSyncService_runPreviousMonthAnalysis_skipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao analisador é esperada enquanto outra execução está ativa.
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &AnalysisSyncService{
		config:      AnalysisSyncConfig{SystemUserID: 1},
		analyzer:    analyzer,
		syncRunning: true,
	}

	assert.NoError(t, service.runPreviousMonthAnalysis(context.Background()))
}
