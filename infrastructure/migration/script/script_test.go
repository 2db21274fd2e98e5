package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Os repositórios juntam setores e cargos por id_setor/nome_setor e
// id_cargo/nome_cargo; o schema criado aqui precisa declarar essas colunas.
func TestDDL_ColunasDeSetoresECargos(t *testing.T) {
	schema := strings.Join(ddl, "\n")

	assert.Contains(t, schema, "id_setor SERIAL PRIMARY KEY")
	assert.Contains(t, schema, "nome_setor VARCHAR(100) NOT NULL UNIQUE")
	assert.Contains(t, schema, "id_cargo SERIAL PRIMARY KEY")
	assert.Contains(t, schema, "nome_cargo VARCHAR(100) NOT NULL UNIQUE")

	assert.Contains(t, schema, "REFERENCES setores(id_setor)")
	assert.Contains(t, schema, "REFERENCES cargos(id_cargo)")
	assert.NotContains(t, schema, "REFERENCES setores(id)")
	assert.NotContains(t, schema, "REFERENCES cargos(id)")
}
