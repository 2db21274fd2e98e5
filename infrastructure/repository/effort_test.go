package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapia/backoffice-api/internal/domain"
)

func TestEffortListQuery(t *testing.T) {
	query, args, err := effortListQuery(10)

	assert.NoError(t, err)
	// As tabelas de referência usam id_setor/nome_setor e id_cargo/nome_cargo
	assert.Contains(t, query, "JOIN setores s ON ae.setor_id = s.id_setor")
	assert.Contains(t, query, "JOIN cargos c ON ae.cargo_id = c.id_cargo")
	assert.Equal(t, []interface{}{10}, args)
}

func TestEffortUpsertQuery(t *testing.T) {
	alloc := &domain.EffortAllocation{
		InvoiceID:        10,
		SectorID:         1,
		RoleID:           2,
		Headcount:        3,
		TotalHours:       44,
		RecordedByUserID: 42,
	}

	query, args, err := effortUpsertQuery(alloc)

	assert.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (faturamento_id, setor_id, cargo_id)")
	assert.Contains(t, query, "data_registro = NOW()")
	// alocacao_esforco_cliente_cargo não tem updated_at
	assert.NotContains(t, query, "updated_at")
	assert.Len(t, args, 6)
}
