package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/echoserver/echo"
)

func Module() fx.Option {
	return fx.Module("handler",
		fx.Provide(echo.NewEchoHandler),
		fx.Provide(echo.NewHealthHandler),
		fx.Provide(NewRoutes),
	)
}
