package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde o horário corrente, sinal suficiente de que o
// processo está aceitando conexões.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().Format(time.RFC3339))); err != nil {
			logrus.WithError(err).Warn("erro ao responder healthcheck")
		}
	})
}
