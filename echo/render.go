package echo

import (
	"encoding/json"
	"net/http"
)

// Render converts a result into a response. Successful results are
// encoded as JSON, failed results as an ErrorDetail document.
func Render(result Result) Response {
	if result.Failed() {
		return newErrorResponse(result.Err)
	}

	body, err := json.Marshal(result.Payload)
	if err != nil {
		return newErrorResponse(err)
	}

	status := result.Status
	if status == 0 {
		status = http.StatusOK
	}

	return newResponse(status, body)
}

// newErrorResponse creates a new error response.
func newErrorResponse(err error) Response {
	body, marshalErr := json.Marshal(ErrorDetail{Detail: err.Error()})
	if marshalErr != nil {
		return newResponse(http.StatusInternalServerError, []byte(`{"detail":"internal server error"}`))
	}

	return newResponse(ErrorStatus(err), body)
}

// newResponse creates a new response.
func newResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Add("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
