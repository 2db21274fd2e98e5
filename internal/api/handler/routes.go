package handler

import (
	"net/http"

	"github.com/mapia/backoffice-api/internal/api/handler/router"
	"github.com/mapia/backoffice-api/internal/usecases/allocating"
	"github.com/mapia/backoffice-api/internal/usecases/analyzing"
	"github.com/mapia/backoffice-api/internal/usecases/authenticating"
	"github.com/mapia/backoffice-api/internal/usecases/configuring"
	"github.com/mapia/backoffice-api/internal/usecases/invoicing"
	"github.com/mapia/backoffice-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RoleMiddleware([]int{middleware.RoleDev})},
		},
	}
}

func ContractAnalysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contract-analysis/generate/:mes_ano",
			Method:      http.MethodPost,
			Handler:     GenerateAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
		{
			Path:        "/v1/contract-analysis/month/:mes_ano",
			Method:      http.MethodGet,
			Handler:     ListAnalyses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
		{
			Path:        "/v1/contract-analysis/contract-value/:analise_id",
			Method:      http.MethodPut,
			Handler:     UpdateContractValue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
	}
}

func AnalysisConfig(service configuring.Configurer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis-config/global/:mes_ano",
			Method:      http.MethodGet,
			Handler:     GetGlobalConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Management()},
		},
		{
			Path:        "/v1/analysis-config/global",
			Method:      http.MethodPost,
			Handler:     SaveGlobalConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Management()},
		},
		{
			Path:        "/v1/analysis-config/salaries/:mes_ano",
			Method:      http.MethodGet,
			Handler:     ListSalaryConfigs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Management()},
		},
		{
			Path:        "/v1/analysis-config/salaries/:mes_ano",
			Method:      http.MethodPost,
			Handler:     SaveSalaryConfigs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Management()},
		},
	}
}

func EffortAllocation(service allocating.Allocator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/effort/invoice/:faturamento_id",
			Method:      http.MethodGet,
			Handler:     ListEffortAllocations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
		{
			Path:        "/v1/effort/invoice/:faturamento_id",
			Method:      http.MethodPost,
			Handler:     SaveEffortAllocations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
		{
			Path:        "/v1/effort/allocations/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEffortAllocation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodPost,
			Handler:     CreateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FinanceAccess()},
		},
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListInvoices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FinanceAccess()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.FinanceAccess()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOrGestor()},
		},
	}
}
