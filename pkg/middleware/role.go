package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
)

// Roles do back-office. O conjunto é fechado: toda checagem de permissão passa
// por este middleware na borda das rotas, nunca por comparação de strings nos
// handlers.
const (
	RoleDev         = 1
	RoleGerente     = 2
	RoleGestor      = 3
	RoleFiscal      = 4
	RoleColaborador = 5
)

// RoleMiddleware restringe o acesso à rota aos roles informados.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d em %s",
					userClaims.UserID, userClaims.UserRoleID, r.URL.Path)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege,
					"Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Management permite Gerente e Dev: escrita de configurações da análise.
func Management() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleDev, RoleGerente})
}

// ManagementOrGestor permite Gerente, Gestor e Dev: motor de análise,
// listagem e edição do valor de contrato.
func ManagementOrGestor() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleDev, RoleGerente, RoleGestor})
}

// FinanceAccess permite também o Fiscal: lançamento e consulta de faturamentos.
func FinanceAccess() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleDev, RoleGerente, RoleGestor, RoleFiscal})
}

// AllRoles permite qualquer usuário autenticado.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleDev, RoleGerente, RoleGestor, RoleFiscal, RoleColaborador})
}
