package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateClientCode gera o código curto de exibição de um cliente.
func GenerateClientCode() (string, error) {
	return gonanoid.Generate(codeAlphabet, 6)
}
