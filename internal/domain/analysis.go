package domain

import "time"

// Status de alerta de uma análise contratual.
const (
	// AlertOK indica que o valor de contrato atual cobre o valor ideal.
	AlertOK = "OK"
	// AlertReviewContract indica que o contrato atual está abaixo do ideal.
	AlertReviewContract = "REVISAR_CONTRATO"
	// AlertNeutral indica contrato exatamente no valor ideal. Só é atribuído
	// pela edição manual do gerente; o batch usa a regra binária OK/REVISAR.
	AlertNeutral = "NEUTRO"
)

// ContractAnalysis é o resultado do motor de análise para um faturamento.
// Invariante: no máximo uma análise por faturamento (chave de upsert).
// Os campos calculados são sobrescritos a cada execução do batch; o valor de
// contrato informado pelo gerente nunca é apagado por uma reexecução.
type ContractAnalysis struct {
	ID             int       `json:"analise_id"`
	InvoiceID      int       `json:"faturamento_id"`
	ClientID       int       `json:"cliente_id"`
	ClientName     string    `json:"nome_cliente,omitempty"`
	ClientCode     string    `json:"codigo_cliente,omitempty"`
	ReferenceMonth time.Time `json:"mes_ano_referencia"`

	InvoiceAmount    float64 `json:"valor_faturamento_cliente_mes"`
	LaborCost        float64 `json:"custo_total_mao_de_obra_calculado"`
	CostBaseline     float64 `json:"custo_total_base_para_margem_calculado"`
	MarginPctApplied float64 `json:"percentual_margem_lucro_aplicada"`
	IdealValue       float64 `json:"valor_ideal_calculado_com_margem"`

	// CurrentContractValue é o "valor de contrato atual" informado pelo
	// gerente (ou herdado do mês anterior). Nulo enquanto nunca definido.
	CurrentContractValue *float64 `json:"valor_contrato_atual_cliente_input_gerente"`
	Difference           float64  `json:"diferenca_analise"`
	AlertStatus          string   `json:"status_alerta"`

	GeneratedAt     time.Time `json:"data_analise_gerada"`
	RunByUserID     int       `json:"analise_realizada_por_usuario_id"`
	RunByUserName   string    `json:"nome_usuario_analise,omitempty"`
	CreatedByUserID int       `json:"-"`
	UpdatedByUserID int       `json:"-"`
	CreatedByName   string    `json:"nome_usuario_criacao,omitempty"`
	UpdatedByName   string    `json:"nome_usuario_atualizacao,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AnalysisRunResult agrega o retorno de uma execução do batch: as análises
// criadas/atualizadas e os avisos de alocações que não puderam ser custeadas.
type AnalysisRunResult struct {
	ReferenceMonth time.Time           `json:"mes_ano_referencia"`
	Analyses       []*ContractAnalysis `json:"analises"`
	Warnings       []string            `json:"warnings"`
}
