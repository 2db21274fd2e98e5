package analyzing

import (
	"context"
	"time"

	"github.com/mapia/backoffice-api/internal/domain"
)

// Analyzer expõe o motor de análise contratual.
type Analyzer interface {
	// GenerateMonthlyAnalysis executa o batch do mês de referência: cruza a
	// tabela de salários com as alocações de esforço de cada faturamento,
	// calcula o valor ideal com margem e grava tudo em uma única transação.
	GenerateMonthlyAnalysis(ctx context.Context, month time.Time, actor *domain.Claims) (*domain.AnalysisRunResult, error)

	// ListAnalyses retorna as análises do mês, com nomes de cliente e usuários.
	ListAnalyses(ctx context.Context, month time.Time) ([]*domain.ContractAnalysis, error)

	// UpdateContractValue grava o valor de contrato informado pelo gerente e
	// rederiva diferença e status de alerta sob lock de linha.
	UpdateContractValue(ctx context.Context, analysisID int, value float64, actor *domain.Claims) (*domain.ContractAnalysis, error)
}
