package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidReferenceMonth indica um mes_ano fora dos formatos aceitos.
var ErrInvalidReferenceMonth = errors.New("mes_ano inválido, use YYYY-MM-DD ou YYYY-MM")

// ParseReferenceMonth interpreta um mês de referência vindo da API, nos
// formatos YYYY-MM-DD ou YYYY-MM, e normaliza para o primeiro dia do mês em
// UTC. A aritmética de meses do motor de análise depende dessa normalização.
func ParseReferenceMonth(value string) (time.Time, error) {
	layouts := []string{"2006-01-02", "2006-01"}

	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return FirstDayOfMonth(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidReferenceMonth, value)
}

// FirstDayOfMonth trunca a data para o primeiro dia do mês em UTC.
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PreviousMonth retorna o primeiro dia do mês imediatamente anterior, em UTC.
// O cálculo em termos de calendário UTC evita o deslocamento de um dia que
// ocorreria ajustando meses em fuso local na virada do mês.
func PreviousMonth(month time.Time) time.Time {
	return FirstDayOfMonth(month).AddDate(0, -1, 0)
}

// FormatReferenceMonth formata o mês de referência como YYYY-MM-DD.
func FormatReferenceMonth(month time.Time) string {
	return month.UTC().Format("2006-01-02")
}
