package echo

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler is the interface for handling echo requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Result
}

// HandlerParams defines the dependencies for the echo handlers.
type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

// EchoHandler reflects the request headers and body back to the
// caller.
type EchoHandler struct {
	log *zap.Logger
}

// NewEchoHandler creates a new echo handler.
func NewEchoHandler(params HandlerParams) *EchoHandler {
	return &EchoHandler{
		log: params.Log,
	}
}

// Handle handles an echo request.
func (h *EchoHandler) Handle(ctx context.Context, req Request) Result {
	body, err := DecodeBody(ctx, req.Body)
	if err != nil {
		h.log.Debug("failed to decode body",
			zap.String("path", req.Path),
			zap.String("method", req.Method),
			zap.Error(err),
		)
		return Fail(err)
	}

	return OK(EchoResponse{
		Headers: CollectHeaders(req),
		Body:    body,
	})
}

// HealthHandler reports liveness.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Handle(context.Context, Request) Result {
	return OK(Healthy)
}
