package log

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields = logrus.Fields

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto da requisição
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// L é a instância global de logger para uso direto
var L = logrus.NewEntry(logrus.StandardLogger())

// SetupTestLogger configura um logger compacto para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: false,
		PadLevelText:  true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	L = logrus.NewEntry(logrus.StandardLogger())
}

// WithCorrelationID gera um ID de correlação e o anexa ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto, se presente
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger carregando o ID de correlação do contexto
func ForContext(ctx context.Context) *logrus.Entry {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(correlationIDField, correlationID)
	}
	return L
}
