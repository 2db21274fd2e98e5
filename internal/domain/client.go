package domain

import "time"

// Client representa um cliente da carteira. A análise contratual só lê estes
// dados; o cadastro é mantido por outra frente do back-office.
type Client struct {
	ID          int       `json:"id"`
	Code        string    `json:"codigo"`
	RazaoSocial string    `json:"razao_social"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sector é um setor operacional da firma (Fiscal, Contábil, DP...).
type Sector struct {
	ID   int    `json:"id_setor"`
	Name string `json:"nome_setor"`
}

// JobRole é um cargo exercido dentro de um setor.
type JobRole struct {
	ID   int    `json:"id_cargo"`
	Name string `json:"nome_cargo"`
}
