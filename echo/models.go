package echo

import (
	"io"
	"net/http"
)

// Request represents an incoming request, as seen by a Handler.
type Request struct {
	Method string
	Path   string
	Host   string
	Header http.Header

	// TransferEncoding holds the transfer codings net/http strips
	// from Header while parsing the request.
	TransferEncoding []string

	// Body is read at most once, by the handler.
	Body io.Reader
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// EchoResponse is the document returned by the echo handler.
type EchoResponse struct {
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// HealthStatus is the document returned by the health handler.
type HealthStatus struct {
	Status string `json:"status"`
}

// Healthy is the only health status reported.
var Healthy = HealthStatus{Status: "ok"}

// ErrorDetail is the document returned for failed requests.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
