package domain

import "time"

// EffortAllocation registra quantos funcionários de um cargo/setor atenderam o
// cliente de um faturamento e o total de horas gastas. Única por
// (faturamento, setor, cargo); mutada por upsert em lote.
type EffortAllocation struct {
	ID               int       `json:"id"`
	InvoiceID        int       `json:"faturamento_id"`
	SectorID         int       `json:"setor_id"`
	SectorName       string    `json:"nome_setor,omitempty"`
	RoleID           int       `json:"cargo_id"`
	RoleName         string    `json:"nome_cargo,omitempty"`
	Headcount        int       `json:"quantidade_funcionarios"`
	TotalHours       float64   `json:"total_horas_gastas_cargo"`
	RecordedByUserID int       `json:"registrado_por_usuario_id"`
	RecordedByName   string    `json:"nome_usuario_registro,omitempty"`
	RecordedAt       time.Time `json:"data_registro"`
}

// EffortAllocationInput é o payload de upsert em lote de alocações.
type EffortAllocationInput struct {
	SectorID   int     `json:"setor_id"`
	RoleID     int     `json:"cargo_id"`
	Headcount  int     `json:"quantidade_funcionarios"`
	TotalHours float64 `json:"total_horas_gastas_cargo"`
}
