package domain

import "time"

// InvoiceRecord é o faturamento de um cliente em um mês: único por
// (cliente, mes_ano). mes_ano é sempre o primeiro dia do mês em UTC.
type InvoiceRecord struct {
	ID              int       `json:"id"`
	ClientID        int       `json:"cliente_id"`
	ClientCode      string    `json:"cliente_codigo,omitempty"`
	ClientName      string    `json:"cliente_razao_social,omitempty"`
	ReferenceMonth  time.Time `json:"mes_ano"`
	Amount          float64   `json:"valor_faturamento"`
	CreatedByUserID int       `json:"-"`
	UpdatedByUserID int       `json:"-"`
	CreatedByName   string    `json:"created_by_user_nome,omitempty"`
	UpdatedByName   string    `json:"updated_by_user_nome,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// InvoiceFilter são os filtros aceitos na listagem de faturamentos.
type InvoiceFilter struct {
	Year   int
	Month  int
	Search string
}
