package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/allocating"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
	"github.com/mapia/backoffice-api/pkg/middleware"
)

type SaveEffortBatchRequest struct {
	Allocations []domain.EffortAllocationInput `json:"alocacoes"`
}

// ListEffortAllocations retorna as alocações de esforço de um faturamento
func ListEffortAllocations(service allocating.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceID, ok := invoiceIDParam(w, r)
		if !ok {
			return
		}

		allocations, err := service.ListByInvoice(r.Context(), invoiceID)
		if err != nil {
			handleEffortError(w, err)
			return
		}

		writeJSON(w, allocations)
	}
}

// SaveEffortAllocations faz o upsert em lote das alocações de um faturamento
func SaveEffortAllocations(service allocating.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		invoiceID, ok := invoiceIDParam(w, r)
		if !ok {
			return
		}

		var req SaveEffortBatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.SaveBatch(r.Context(), invoiceID, req.Allocations, claims)
		if err != nil {
			handleEffortError(w, err)
			return
		}

		writeJSON(w, saved)
	}
}

// DeleteEffortAllocation remove uma alocação de esforço individual
func DeleteEffortAllocation(service allocating.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		allocationID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de alocação inválido", nil)
			return
		}

		if err := service.Delete(r.Context(), allocationID, claims); err != nil {
			handleEffortError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleEffortError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, allocating.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Faturamento não encontrado", nil)

	case errors.Is(err, allocating.ErrAllocationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Alocação de esforço não encontrada", nil)

	case errors.Is(err, allocating.ErrInvalidHeadcount),
		errors.Is(err, allocating.ErrInvalidHours):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, allocating.ErrEmptyBatch):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma alocação informada", nil)

	default:
		logrus.Error("Erro nas alocações de esforço:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar alocações de esforço", nil)
	}
}

func invoiceIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("faturamento_id")
	invoiceID, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de faturamento inválido", nil)
		return 0, false
	}
	return invoiceID, true
}
