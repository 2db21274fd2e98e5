package domain

import "time"

// AuditLog é um registro de auditoria de uma ação no sistema.
type AuditLog struct {
	ID         int64     `json:"id"`
	UserID     *int      `json:"user_id"`
	UserEmail  *string   `json:"user_email"`
	ActionType string    `json:"action_type"`
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id"`
	Details    any       `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tipos de ação auditados pelo domínio da análise contratual.
const (
	ActionAnalysisGenerated      = "ANALISE_CONTRATUAL_GERADA"
	ActionAnalysisGenerateFailed = "ANALISE_CONTRATUAL_GERAR_FAILED"
	ActionContractValueUpdated   = "ANALISE_VALOR_CONTRATO_UPDATED"
	ActionContractValueFailed    = "ANALISE_VALOR_CONTRATO_UPDATE_FAILED"

	ActionGlobalConfigSaved = "CONFIG_GLOBAL_SAVED"
	ActionSalaryConfigSaved = "CONFIG_SALARIO_SAVED_BATCH"

	ActionEffortSavedBatch = "ALOCACAO_ESFORCO_SAVED_BATCH"
	ActionEffortDeleted    = "ALOCACAO_ESFORCO_DELETED"

	ActionInvoiceCreated = "FATURAMENTO_CREATED"
	ActionInvoiceUpdated = "FATURAMENTO_UPDATED"
	ActionInvoiceDeleted = "FATURAMENTO_DELETED"

	ActionUserLoginSuccess = "USER_LOGIN_SUCCESS"
	ActionUserLoginFailed  = "USER_LOGIN_FAILED"
)

// Tipos de entidade auditados.
const (
	EntityContractAnalysis = "AnaliseContratual"
	EntityGlobalConfig     = "ConfiguracaoAnaliseGlobal"
	EntitySalaryConfig     = "ConfiguracaoSalario"
	EntityEffortAllocation = "AlocacaoEsforco"
	EntityInvoice          = "Faturamento"
	EntityUser             = "User"
)
