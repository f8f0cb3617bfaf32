package handler

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoserver/echo"
	"github.com/lambda-feedback/echoserver/internal/server"
)

// RouteTable returns the routes served by the echo server, in
// registration order. The echo route matches every path; the
// health route wins for GET requests by virtue of its method.
func RouteTable(echoHandler, healthHandler http.Handler) []*server.Route {
	return []*server.Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: healthHandler},
		{Method: http.MethodPost, Pattern: "/", Handler: echoHandler},
	}
}

type RoutesParams struct {
	fx.In

	Echo   *echo.EchoHandler
	Health *echo.HealthHandler
	Log    *zap.Logger
}

type RoutesResult struct {
	fx.Out

	Routes []*server.Route `group:"routes,flatten"`
}

// NewRoutes provides the route table to the routes group.
func NewRoutes(params RoutesParams) RoutesResult {
	return RoutesResult{
		Routes: RouteTable(
			NewHTTPHandler(params.Echo, params.Log),
			NewHTTPHandler(params.Health, params.Log),
		),
	}
}
