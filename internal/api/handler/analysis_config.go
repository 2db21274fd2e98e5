package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/configuring"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
	"github.com/mapia/backoffice-api/pkg/middleware"
	"github.com/mapia/backoffice-api/pkg/utils"
)

type SaveGlobalConfigRequest struct {
	MesAno             string   `json:"mes_ano_referencia"`
	DesiredMarginPct   *float64 `json:"percentual_margem_lucro_desejada"`
	MonthlyHoursFactor *float64 `json:"fator_horas_mensal_padrao"`
}

type SaveSalaryConfigsRequest struct {
	Salaries []configuring.SalaryConfigInput `json:"salarios"`
}

// GetGlobalConfig retorna a configuração global de análise do mês
func GetGlobalConfig(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		cfg, err := service.GetGlobalConfig(r.Context(), month)
		if err != nil {
			if errors.Is(err, configuring.ErrGlobalConfigNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Configuração global não encontrada para o mês", nil)
				return
			}
			logrus.Error("Erro ao buscar configuração global:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configuração global", nil)
			return
		}

		writeJSON(w, cfg)
	}
}

// SaveGlobalConfig faz o upsert da configuração global de análise do mês
func SaveGlobalConfig(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SaveGlobalConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.DesiredMarginPct == nil || req.MonthlyHoursFactor == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Margem e fator de horas são obrigatórios", nil)
			return
		}

		month, err := utils.ParseReferenceMonth(req.MesAno)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de referência inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		cfg := &domain.GlobalAnalysisConfig{
			ReferenceMonth:     month,
			DesiredMarginPct:   *req.DesiredMarginPct,
			MonthlyHoursFactor: *req.MonthlyHoursFactor,
		}

		saved, err := service.SaveGlobalConfig(r.Context(), cfg, claims)
		if err != nil {
			handleConfigError(w, err)
			return
		}

		writeJSON(w, saved)
	}
}

// ListSalaryConfigs retorna a tabela de salários do mês com nomes de setor e cargo
func ListSalaryConfigs(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		configs, err := service.ListSalaryConfigs(r.Context(), month)
		if err != nil {
			logrus.Error("Erro ao listar configurações de salário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar configurações de salário", nil)
			return
		}

		writeJSON(w, configs)
	}
}

// SaveSalaryConfigs faz o upsert em lote da tabela de salários do mês
func SaveSalaryConfigs(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req SaveSalaryConfigsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.SaveSalaryConfigs(r.Context(), month, req.Salaries, claims)
		if err != nil {
			handleConfigError(w, err)
			return
		}

		writeJSON(w, saved)
	}
}

func handleConfigError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, configuring.ErrInvalidMargin),
		errors.Is(err, configuring.ErrInvalidHoursFactor),
		errors.Is(err, configuring.ErrInvalidSalary):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, configuring.ErrEmptySalaryBatch):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma configuração de salário informada", nil)

	default:
		logrus.Error("Erro ao salvar configuração de análise:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração de análise", nil)
	}
}

// monthParam extrai e valida o parâmetro :mes_ano da rota
func monthParam(w http.ResponseWriter, r *http.Request) (month time.Time, ok bool) {
	monthStr := httprouter.ParamsFromContext(r.Context()).ByName("mes_ano")
	parsed, err := utils.ParseReferenceMonth(monthStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de referência inválido, use o formato YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return parsed, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
