package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve um endpoint HTTP e os middlewares aplicados só a ele, além
// da cadeia global do servidor.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas na montagem do router.
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	r := Router{router: httprouter.New()}

	for _, config := range configs {
		config(&r)
	}

	return r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo cada handler nos middlewares da
// própria rota, do último para o primeiro, para preservar a ordem declarada.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
