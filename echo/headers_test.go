package echo_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/echoserver/echo"
)

func TestCollectHeaders(t *testing.T) {
	req := echo.Request{
		Host: "example.com:8080",
		Header: http.Header{
			"X-Test":         []string{"1"},
			"Content-Length": []string{"5"},
			"Accept":         []string{"text/plain", "application/json"},
		},
	}

	headers := echo.CollectHeaders(req)

	assert.Equal(t, map[string]string{
		"Host":           "example.com:8080",
		"X-Test":         "1",
		"Content-Length": "5",
		"Accept":         "text/plain, application/json",
	}, headers)
}

func TestCollectHeaders_CanonicalizesNames(t *testing.T) {
	req := echo.Request{
		Header: http.Header{
			"x-forwarded-for": []string{"10.0.0.1"},
			"X-Forwarded-For": []string{"10.0.0.2"},
		},
	}

	headers := echo.CollectHeaders(req)

	assert.Len(t, headers, 1)
	assert.Contains(t, headers["X-Forwarded-For"], "10.0.0.1")
	assert.Contains(t, headers["X-Forwarded-For"], "10.0.0.2")
}

func TestCollectHeaders_KeepsExplicitHost(t *testing.T) {
	req := echo.Request{
		Host:   "from-request-line",
		Header: http.Header{"Host": []string{"from-header"}},
	}

	headers := echo.CollectHeaders(req)

	assert.Equal(t, "from-header", headers["Host"])
}

func TestCollectHeaders_TransferEncoding(t *testing.T) {
	req := echo.Request{
		Header:           http.Header{},
		TransferEncoding: []string{"chunked"},
	}

	headers := echo.CollectHeaders(req)

	assert.Equal(t, "chunked", headers["Transfer-Encoding"])
}

func TestCollectHeaders_Empty(t *testing.T) {
	headers := echo.CollectHeaders(echo.Request{})

	assert.NotNil(t, headers)
	assert.Empty(t, headers)
}
