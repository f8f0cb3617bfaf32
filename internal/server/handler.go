package server

import (
	"net/http"

	"go.uber.org/fx"
)

// Route binds a handler to a method and path pattern. An empty
// method matches any method. Patterns follow http.ServeMux.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// String returns the route in http.ServeMux pattern syntax.
func (r Route) String() string {
	if r.Method == "" {
		return r.Pattern
	}

	return r.Method + " " + r.Pattern
}

type RouteResult struct {
	fx.Out

	Route *Route `group:"routes"`
}

func AsRoute(
	method string,
	pattern string,
	handler http.Handler,
) RouteResult {
	return RouteResult{
		Route: &Route{
			Method:  method,
			Pattern: pattern,
			Handler: handler,
		},
	}
}
