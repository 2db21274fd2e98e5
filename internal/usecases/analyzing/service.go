package analyzing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/log"
	"github.com/mapia/backoffice-api/pkg/utils"
)

type Service struct {
	conn               postgres.Conn
	configRepository   repository.AnalysisConfigRepository
	invoiceRepository  repository.InvoiceRepository
	effortRepository   repository.EffortRepository
	analysisRepository repository.AnalysisRepository
	auditor            auditing.Auditor
}

func NewService(
	conn postgres.Conn,
	configRepo repository.AnalysisConfigRepository,
	invoiceRepo repository.InvoiceRepository,
	effortRepo repository.EffortRepository,
	analysisRepo repository.AnalysisRepository,
	auditor auditing.Auditor,
) Analyzer {
	return &Service{
		conn:               conn,
		configRepository:   configRepo,
		invoiceRepository:  invoiceRepo,
		effortRepository:   effortRepo,
		analysisRepository: analysisRepo,
		auditor:            auditor,
	}
}

func (s *Service) GenerateMonthlyAnalysis(ctx context.Context, month time.Time, actor *domain.Claims) (*domain.AnalysisRunResult, error) {
	month = utils.FirstDayOfMonth(month)
	logger := log.ForContext(ctx).WithField("mes_ano_referencia", utils.FormatReferenceMonth(month))
	logger.Info("iniciando geração da análise contratual do mês")

	result := &domain.AnalysisRunResult{
		ReferenceMonth: month,
		Analyses:       make([]*domain.ContractAnalysis, 0),
		Warnings:       make([]string, 0),
	}

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		q := postgres.NewTxQueryer(tx)

		globalCfg, err := s.configRepository.GetGlobalConfig(ctx, q, month)
		if err != nil {
			return err
		}
		if globalCfg == nil {
			return ErrConfigurationMissing
		}
		if globalCfg.DesiredMarginPct < 0 {
			return ErrInvalidMargin
		}
		if globalCfg.MonthlyHoursFactor <= 0 {
			return ErrInvalidHoursFactor
		}

		salaryTable, err := s.configRepository.GetSalaryTable(ctx, q, month)
		if err != nil {
			return err
		}
		if salaryTable.Empty() {
			return ErrConfigurationMissing
		}

		invoices, err := s.invoiceRepository.ListWithEffortByMonth(ctx, q, month)
		if err != nil {
			return err
		}
		if len(invoices) == 0 {
			return ErrNoAnalyzableInvoices
		}

		previousMonth := utils.PreviousMonth(month)

		for _, invoice := range invoices {
			allocations, err := s.effortRepository.ListByInvoice(ctx, q, invoice.ID)
			if err != nil {
				return err
			}
			if len(allocations) == 0 {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"cliente %d, faturamento %d: sem alocações de esforço em %s, faturamento ignorado na análise",
					invoice.ClientID, invoice.ID, utils.FormatReferenceMonth(month),
				))
				continue
			}

			laborCost, warnings := costAllocations(invoice, allocations, salaryTable, globalCfg.MonthlyHoursFactor, month)
			result.Warnings = append(result.Warnings, warnings...)

			baseline := invoice.Amount + laborCost
			idealValue := utils.RoundWithTwoDecimalPlace(baseline * (1 + globalCfg.DesiredMarginPct/100))

			// Semente: valor de contrato informado na análise do mesmo
			// cliente no mês imediatamente anterior.
			seed, err := s.analysisRepository.GetManagerValue(ctx, q, invoice.ClientID, previousMonth)
			if err != nil {
				return err
			}

			analysis := &domain.ContractAnalysis{
				InvoiceID:        invoice.ID,
				ClientID:         invoice.ClientID,
				ReferenceMonth:   month,
				InvoiceAmount:    invoice.Amount,
				LaborCost:        laborCost,
				CostBaseline:     utils.RoundWithTwoDecimalPlace(baseline),
				MarginPctApplied: globalCfg.DesiredMarginPct,
				IdealValue:       idealValue,
				RunByUserID:      actor.UserID,
			}

			saved, err := s.analysisRepository.Upsert(ctx, q, analysis, seed)
			if err != nil {
				return err
			}
			result.Analyses = append(result.Analyses, saved)
		}

		return nil
	})
	if err != nil {
		logger.WithError(err).Error("geração da análise contratual falhou, nenhuma linha gravada")
		s.auditor.Record(ctx, actor, domain.ActionAnalysisGenerateFailed, domain.EntityContractAnalysis, nil, map[string]any{
			"mes_ano_referencia": utils.FormatReferenceMonth(month),
			"erro":               err.Error(),
		})
		return nil, err
	}

	logger.WithFields(log.Fields{
		"analises": len(result.Analyses),
		"warnings": len(result.Warnings),
	}).Info("análise contratual do mês gerada")

	s.auditor.Record(ctx, actor, domain.ActionAnalysisGenerated, domain.EntityContractAnalysis, nil, map[string]any{
		"mes_ano_referencia": utils.FormatReferenceMonth(month),
		"total_analises":     len(result.Analyses),
		"total_warnings":     len(result.Warnings),
	})

	return result, nil
}

// costAllocations soma o custo de mão de obra das alocações de um faturamento.
// Combinações sem salário cadastrado (ou com salário zero) não entram na soma e
// viram um aviso; se nenhuma alocação pôde ser custeada o custo é zero.
func costAllocations(invoice *domain.InvoiceRecord, allocations []*domain.EffortAllocation, table domain.SalaryTable, hoursFactor float64, month time.Time) (float64, []string) {
	var total float64
	var warnings []string
	costed := 0

	for _, alloc := range allocations {
		salary, ok := table.Lookup(alloc.SectorID, alloc.RoleID)
		if !ok || salary <= 0 {
			warnings = append(warnings, fmt.Sprintf(
				"cliente %d, faturamento %d: sem salário configurado para %s/%s em %s, alocação ignorada no custo",
				invoice.ClientID, invoice.ID, alloc.SectorName, alloc.RoleName, utils.FormatReferenceMonth(month),
			))
			continue
		}

		hourlyRate := salary / hoursFactor
		total += alloc.TotalHours * hourlyRate
		costed++
	}

	if len(allocations) > 0 && costed == 0 {
		warnings = append(warnings, fmt.Sprintf(
			"cliente %d, faturamento %d: nenhuma alocação pôde ser custeada em %s, custo de mão de obra considerado zero",
			invoice.ClientID, invoice.ID, utils.FormatReferenceMonth(month),
		))
	}

	return utils.RoundWithTwoDecimalPlace(total), warnings
}

func (s *Service) ListAnalyses(ctx context.Context, month time.Time) ([]*domain.ContractAnalysis, error) {
	return s.analysisRepository.ListByMonth(ctx, utils.FirstDayOfMonth(month))
}

func (s *Service) UpdateContractValue(ctx context.Context, analysisID int, value float64, actor *domain.Claims) (*domain.ContractAnalysis, error) {
	if value < 0 {
		return nil, ErrInvalidContractValue
	}

	var updated *domain.ContractAnalysis
	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		q := postgres.NewTxQueryer(tx)

		current, err := s.analysisRepository.GetForUpdate(ctx, q, analysisID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrAnalysisNotFound
		}

		difference := utils.RoundWithTwoDecimalPlace(value - current.IdealValue)
		status := domain.AlertOK
		switch {
		case difference < 0:
			status = domain.AlertReviewContract
		case difference == 0:
			status = domain.AlertNeutral
		}

		updated, err = s.analysisRepository.UpdateContractValue(ctx, q, analysisID, value, difference, status, actor.UserID)
		return err
	})
	if err != nil {
		s.auditor.Record(ctx, actor, domain.ActionContractValueFailed, domain.EntityContractAnalysis, auditing.EntityID(analysisID), map[string]any{
			"erro": err.Error(),
		})
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"analise_id":    analysisID,
		"status_alerta": updated.AlertStatus,
	}).Info("valor de contrato atualizado pelo gerente")

	s.auditor.Record(ctx, actor, domain.ActionContractValueUpdated, domain.EntityContractAnalysis, auditing.EntityID(analysisID), map[string]any{
		"valor_contrato_atual": value,
		"diferenca_analise":    updated.Difference,
		"status_alerta":        updated.AlertStatus,
	})

	return updated, nil
}
