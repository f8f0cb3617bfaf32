package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/lambda-feedback/echoserver/echo"
)

// --- Mock handler ---
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, req echo.Request) echo.Result {
	args := m.Called(ctx, req)
	return args.Get(0).(echo.Result)
}

// --- Test ---
func TestServeHTTP_Success(t *testing.T) {
	mockHandler := new(MockHandler)

	reqBody := []byte(`{"example": "value"}`)
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(reqBody))
	req.Header.Set("X-Test", "1")

	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r echo.Request) bool {
		return r.Path == "/test" &&
			r.Method == http.MethodPost &&
			r.Host == "example.com" &&
			r.Header.Get("X-Test") == "1"
	})).Return(echo.OK(map[string]bool{"ok": true}))

	handler := NewHTTPHandler(mockHandler, zap.NewNop())

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(body))
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_Failure(t *testing.T) {
	mockHandler := new(MockHandler)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.Anything, mock.Anything).
		Return(echo.Fail(errors.New("something broke")))

	handler := NewHTTPHandler(mockHandler, zap.NewNop())

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"something broke"}`, string(body))
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_PassesRequestContext(t *testing.T) {
	mockHandler := new(MockHandler)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")

	req := httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.MatchedBy(func(c context.Context) bool {
		return c.Value(ctxKey{}) == "value"
	}), mock.Anything).Return(echo.OK(echo.Healthy))

	NewHTTPHandler(mockHandler, zap.NewNop()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_PassesMethodAsSent(t *testing.T) {
	mockHandler := new(MockHandler)

	// methods are case-sensitive, so a lowercase token stays lowercase
	req := httptest.NewRequest("post", "/", nil)
	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r echo.Request) bool {
		return r.Method == "post"
	})).Return(echo.OK(echo.Healthy))

	NewHTTPHandler(mockHandler, zap.NewNop()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHandler.AssertExpectations(t)
}
