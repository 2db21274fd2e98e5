package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/invoicing"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
	"github.com/mapia/backoffice-api/pkg/middleware"
	"github.com/mapia/backoffice-api/pkg/utils"
)

// CreateInvoice registra o faturamento mensal de um cliente
func CreateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req invoicing.InvoiceInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.Create(r.Context(), req, claims)
		if err != nil {
			handleInvoiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logrus.Error("Erro ao enviar resposta do faturamento:", err)
		}
	}
}

// ListInvoices lista os faturamentos com filtros de ano, mês e busca textual
func ListInvoices(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := invoicing.BuildFilter(query.Get("ano"), query.Get("mes"), query.Get("busca"))

		invoices, err := service.List(r.Context(), filter)
		if err != nil {
			logrus.Error("Erro ao listar faturamentos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar faturamentos", nil)
			return
		}

		writeJSON(w, invoices)
	}
}

// UpdateInvoice atualiza um faturamento existente
func UpdateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		invoiceID, ok := idParam(w, r)
		if !ok {
			return
		}

		var req invoicing.InvoiceInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.Update(r.Context(), invoiceID, req, claims)
		if err != nil {
			handleInvoiceError(w, err)
			return
		}

		writeJSON(w, saved)
	}
}

// DeleteInvoice remove um faturamento
func DeleteInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		invoiceID, ok := idParam(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), invoiceID, claims); err != nil {
			handleInvoiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateInvoice):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateRecord, "Já existe um faturamento para este cliente neste mês", nil)

	case errors.Is(err, repository.ErrUnknownClient), errors.Is(err, invoicing.ErrInvalidClient):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cliente inválido", nil)

	case errors.Is(err, invoicing.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Faturamento não encontrado", nil)

	case errors.Is(err, invoicing.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Valor de faturamento inválido", nil)

	case errors.Is(err, utils.ErrInvalidReferenceMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de referência inválido, use o formato YYYY-MM ou YYYY-MM-DD", nil)

	default:
		logrus.Error("Erro no faturamento:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar faturamento", nil)
	}
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}
	return id, true
}
