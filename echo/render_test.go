package echo_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/echoserver/echo"
)

func TestRender_OK(t *testing.T) {
	resp := echo.Render(echo.OK(map[string]string{"a": "b"}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"a":"b"}`, string(resp.Body))
}

func TestRender_DefaultStatus(t *testing.T) {
	resp := echo.Render(echo.Result{Payload: echo.Healthy})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRender_CustomStatus(t *testing.T) {
	resp := echo.Render(echo.Result{Status: http.StatusAccepted, Payload: echo.Healthy})

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestRender_Error(t *testing.T) {
	resp := echo.Render(echo.Fail(errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"boom"}`, string(resp.Body))
}

func TestRender_MarshalFailure(t *testing.T) {
	resp := echo.Render(echo.OK(make(chan int)))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "detail")
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, echo.ErrorStatus(&echo.DecodeError{Offset: -1, Err: errors.New("x")}))
	assert.Equal(t, http.StatusInternalServerError, echo.ErrorStatus(errors.New("x")))
}
