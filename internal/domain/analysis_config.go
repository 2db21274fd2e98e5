package domain

import "time"

// GlobalAnalysisConfig guarda os parâmetros globais da análise contratual de um
// mês de referência: margem de lucro desejada e fator de horas mensal padrão.
// Uma linha por mês, upsert pela chave mes_ano_referencia.
type GlobalAnalysisConfig struct {
	ReferenceMonth     time.Time `json:"mes_ano_referencia"`
	DesiredMarginPct   float64   `json:"percentual_margem_lucro_desejada"`
	MonthlyHoursFactor float64   `json:"fator_horas_mensal_padrao"`
	DefinedByUserID    int       `json:"definido_por_usuario_id"`
	ModifiedAt         time.Time `json:"data_modificacao"`
}

// SalaryConfig é o salário mensal base de um cargo dentro de um setor para um
// mês de referência. Única por (mês, setor, cargo).
type SalaryConfig struct {
	ID              int       `json:"id"`
	ReferenceMonth  time.Time `json:"mes_ano_referencia"`
	SectorID        int       `json:"setor_id"`
	SectorName      string    `json:"nome_setor,omitempty"`
	RoleID          int       `json:"cargo_id"`
	RoleName        string    `json:"nome_cargo,omitempty"`
	BaseSalary      float64   `json:"salario_mensal_base"`
	DefinedByUserID int       `json:"definido_por_usuario_id"`
	ModifiedAt      time.Time `json:"data_modificacao"`
}

// SalaryKey identifica a combinação setor/cargo na tabela de salários.
type SalaryKey struct {
	SectorID int
	RoleID   int
}

// SalaryTable é a tabela de consulta de salários montada uma vez por execução
// do motor de análise.
type SalaryTable map[SalaryKey]float64

// Lookup retorna o salário base da combinação, se configurado.
func (t SalaryTable) Lookup(sectorID, roleID int) (float64, bool) {
	salary, ok := t[SalaryKey{SectorID: sectorID, RoleID: roleID}]
	return salary, ok
}

func (t SalaryTable) Empty() bool {
	return len(t) == 0
}
