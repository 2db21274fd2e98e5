package configuring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/log"
	"github.com/mapia/backoffice-api/pkg/utils"
)

var (
	ErrGlobalConfigNotFound = errors.New("configuração global não encontrada para o mês de referência")
	ErrInvalidMargin        = errors.New("percentual de margem de lucro inválido")
	ErrInvalidHoursFactor   = errors.New("fator de horas mensal padrão inválido")
	ErrInvalidSalary        = errors.New("salário mensal base inválido")
	ErrEmptySalaryBatch     = errors.New("nenhuma configuração de salário informada")
)

// SalaryConfigInput é uma entrada do upsert em lote de salários.
type SalaryConfigInput struct {
	SectorID   int     `json:"setor_id"`
	RoleID     int     `json:"cargo_id"`
	BaseSalary float64 `json:"salario_mensal_base"`
}

// Configurer mantém os parâmetros mensais que alimentam o motor de análise.
type Configurer interface {
	GetGlobalConfig(ctx context.Context, month time.Time) (*domain.GlobalAnalysisConfig, error)
	SaveGlobalConfig(ctx context.Context, cfg *domain.GlobalAnalysisConfig, actor *domain.Claims) (*domain.GlobalAnalysisConfig, error)
	ListSalaryConfigs(ctx context.Context, month time.Time) ([]*domain.SalaryConfig, error)
	SaveSalaryConfigs(ctx context.Context, month time.Time, inputs []SalaryConfigInput, actor *domain.Claims) ([]*domain.SalaryConfig, error)
}

type Service struct {
	conn             postgres.Conn
	configRepository repository.AnalysisConfigRepository
	auditor          auditing.Auditor
}

func NewService(conn postgres.Conn, configRepo repository.AnalysisConfigRepository, auditor auditing.Auditor) Configurer {
	return &Service{conn: conn, configRepository: configRepo, auditor: auditor}
}

func (s *Service) GetGlobalConfig(ctx context.Context, month time.Time) (*domain.GlobalAnalysisConfig, error) {
	cfg, err := s.configRepository.GetGlobalConfig(ctx, nil, utils.FirstDayOfMonth(month))
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrGlobalConfigNotFound
	}
	return cfg, nil
}

func (s *Service) SaveGlobalConfig(ctx context.Context, cfg *domain.GlobalAnalysisConfig, actor *domain.Claims) (*domain.GlobalAnalysisConfig, error) {
	if cfg.DesiredMarginPct < 0 {
		return nil, ErrInvalidMargin
	}
	if cfg.MonthlyHoursFactor <= 0 {
		return nil, ErrInvalidHoursFactor
	}

	cfg.ReferenceMonth = utils.FirstDayOfMonth(cfg.ReferenceMonth)
	cfg.DefinedByUserID = actor.UserID

	saved, err := s.configRepository.UpsertGlobalConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"mes_ano_referencia": utils.FormatReferenceMonth(saved.ReferenceMonth),
		"margem":             saved.DesiredMarginPct,
		"fator_horas":        saved.MonthlyHoursFactor,
	}).Info("configuração global de análise salva")

	s.auditor.Record(ctx, actor, domain.ActionGlobalConfigSaved, domain.EntityGlobalConfig, nil, map[string]any{
		"mes_ano_referencia":               utils.FormatReferenceMonth(saved.ReferenceMonth),
		"percentual_margem_lucro_desejada": saved.DesiredMarginPct,
		"fator_horas_mensal_padrao":        saved.MonthlyHoursFactor,
	})

	return saved, nil
}

func (s *Service) ListSalaryConfigs(ctx context.Context, month time.Time) ([]*domain.SalaryConfig, error) {
	return s.configRepository.ListSalaryConfigs(ctx, utils.FirstDayOfMonth(month))
}

// SaveSalaryConfigs grava o lote inteiro em uma transação: qualquer salário
// negativo aborta tudo, para o mês nunca ficar com a tabela pela metade.
func (s *Service) SaveSalaryConfigs(ctx context.Context, month time.Time, inputs []SalaryConfigInput, actor *domain.Claims) ([]*domain.SalaryConfig, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptySalaryBatch
	}

	month = utils.FirstDayOfMonth(month)
	for _, input := range inputs {
		if input.BaseSalary < 0 {
			return nil, fmt.Errorf("%w: setor %d, cargo %d", ErrInvalidSalary, input.SectorID, input.RoleID)
		}
	}

	saved := make([]*domain.SalaryConfig, 0, len(inputs))
	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		q := postgres.NewTxQueryer(tx)

		for _, input := range inputs {
			cfg := &domain.SalaryConfig{
				ReferenceMonth:  month,
				SectorID:        input.SectorID,
				RoleID:          input.RoleID,
				BaseSalary:      input.BaseSalary,
				DefinedByUserID: actor.UserID,
			}

			row, err := s.configRepository.UpsertSalaryConfig(ctx, q, cfg)
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

	s.auditor.Record(ctx, actor, domain.ActionSalaryConfigSaved, domain.EntitySalaryConfig, nil, map[string]any{
		"mes_ano_referencia": utils.FormatReferenceMonth(month),
		"total_registros":    len(saved),
	})

	return saved, nil
}
