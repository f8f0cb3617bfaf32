package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name))
	})
}

func TestNewServeMux(t *testing.T) {
	mux, err := NewServeMux([]*Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: namedHandler("health")},
		{Method: http.MethodPost, Pattern: "/", Handler: namedHandler("echo")},
	})
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, "health"},
		{http.MethodPost, "/", http.StatusOK, "echo"},
		{http.MethodPost, "/a/b/c", http.StatusOK, "echo"},
		{http.MethodPost, "/health", http.StatusOK, "echo"},
		{http.MethodGet, "/foo", http.StatusMethodNotAllowed, ""},
		{http.MethodPut, "/foo", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestNewServeMux_NonCanonicalPath(t *testing.T) {
	var seen string
	mux, err := NewServeMux([]*Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: namedHandler("health")},
		{Method: http.MethodPost, Pattern: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.URL.Path
			w.Write([]byte("echo"))
		})},
	})
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "//foo", "echo"},
		{http.MethodPost, "/a//b", "echo"},
		{http.MethodPost, "/a/../b", "echo"},
		{http.MethodPost, "/a/./b", "echo"},
		{http.MethodPost, "/a/b//", "echo"},
		{http.MethodGet, "/x/../health", "health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			seen = ""
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
			assert.Equal(t, tt.body, w.Body.String())
			if tt.body == "echo" {
				assert.Equal(t, tt.path, seen)
			}
		})
	}
}

func TestCleanPath(t *testing.T) {
	assert.Equal(t, "/", cleanPath(""))
	assert.Equal(t, "/foo", cleanPath("foo"))
	assert.Equal(t, "/foo", cleanPath("//foo"))
	assert.Equal(t, "/b", cleanPath("/a/../b"))
	assert.Equal(t, "/a/b/", cleanPath("/a/./b/"))
	assert.Equal(t, "/", cleanPath("/../"))
}

func TestNewServeMux_NotFound(t *testing.T) {
	mux, err := NewServeMux([]*Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: namedHandler("health")},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewServeMux_AnyMethod(t *testing.T) {
	mux, err := NewServeMux([]*Route{
		{Pattern: "/any", Handler: namedHandler("any")},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/any", nil))

	assert.Equal(t, "any", w.Body.String())
}

func TestNewServeMux_Duplicate(t *testing.T) {
	_, err := NewServeMux([]*Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: namedHandler("a")},
		{Method: http.MethodGet, Pattern: "/health", Handler: namedHandler("b")},
	})

	assert.ErrorContains(t, err, "duplicate route: GET /health")
}

func TestNewServeMux_InvalidPattern(t *testing.T) {
	_, err := NewServeMux([]*Route{
		{Method: http.MethodGet, Pattern: "health", Handler: namedHandler("a")},
	})

	assert.ErrorContains(t, err, "invalid route")
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "GET /health", Route{Method: http.MethodGet, Pattern: "/health"}.String())
	assert.Equal(t, "/", Route{Pattern: "/"}.String())
}
