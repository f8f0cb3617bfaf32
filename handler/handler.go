package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/lambda-feedback/echoserver/echo"
)

// NewHTTPHandler adapts an echo.Handler to net/http.
func NewHTTPHandler(handler echo.Handler, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		handler: handler,
		log:     log,
	}
}

type HTTPHandler struct {
	handler echo.Handler
	log     *zap.Logger
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	request := echo.Request{
		Method:           r.Method,
		Path:             r.URL.Path,
		Host:             r.Host,
		Header:           r.Header,
		TransferEncoding: r.TransferEncoding,
		Body:             r.Body,
	}

	// Handle the request
	response := echo.Render(h.handler.Handle(r.Context(), request))

	log.Debug("handled request", zap.Int("status", response.StatusCode))

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
