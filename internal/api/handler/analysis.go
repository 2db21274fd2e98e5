package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/analyzing"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
	"github.com/mapia/backoffice-api/pkg/middleware"
	"github.com/mapia/backoffice-api/pkg/utils"
)

type UpdateContractValueRequest struct {
	ContractValue *float64 `json:"valor_contrato_atual"`
}

// GenerateAnalysis dispara o batch de análise contratual do mês informado
func GenerateAnalysis(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		monthStr := httprouter.ParamsFromContext(r.Context()).ByName("mes_ano")
		month, err := utils.ParseReferenceMonth(monthStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de referência inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		result, err := service.GenerateMonthlyAnalysis(r.Context(), month, claims)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resposta da análise:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListAnalyses retorna as análises contratuais do mês informado
func ListAnalyses(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthStr := httprouter.ParamsFromContext(r.Context()).ByName("mes_ano")
		month, err := utils.ParseReferenceMonth(monthStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de referência inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		analyses, err := service.ListAnalyses(r.Context(), month)
		if err != nil {
			logrus.Error("Erro ao listar análises contratuais:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar análises contratuais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analyses); err != nil {
			logrus.Error("Erro ao enviar resposta das análises:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateContractValue grava o valor de contrato informado pelo gerente
func UpdateContractValue(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("analise_id")
		analysisID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de análise inválido", nil)
			return
		}

		var req UpdateContractValueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.ContractValue == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "valor_contrato_atual é obrigatório", nil)
			return
		}

		updated, err := service.UpdateContractValue(r.Context(), analysisID, *req.ContractValue, claims)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logrus.Error("Erro ao enviar resposta da análise:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleAnalysisError mapeia os erros do motor de análise para os códigos da API
func handleAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzing.ErrConfigurationMissing):
		apiErrors.WriteError(w, apiErrors.ErrConfigurationMissing, "Configuração de análise ausente para o mês de referência", nil)

	case errors.Is(err, analyzing.ErrInvalidMargin), errors.Is(err, analyzing.ErrInvalidHoursFactor):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, analyzing.ErrNoAnalyzableInvoices):
		apiErrors.WriteError(w, apiErrors.ErrNoAnalyzableInvoices, "Nenhum faturamento com esforço lançado no mês de referência", nil)

	case errors.Is(err, analyzing.ErrAnalysisNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Análise contratual não encontrada", nil)

	case errors.Is(err, analyzing.ErrInvalidContractValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Valor de contrato atual inválido", nil)

	default:
		logrus.Error("Erro na análise contratual:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar análise contratual", nil)
	}
}
