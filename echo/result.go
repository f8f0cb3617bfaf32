package echo

import "net/http"

// Result is the outcome of handling a request. Exactly one of
// Payload or Err is meaningful: a non-nil Err marks a failure.
type Result struct {
	// Status overrides the default status code if non-zero.
	Status  int
	Payload any
	Err     error
}

// OK creates a successful result carrying payload.
func OK(payload any) Result {
	return Result{Status: http.StatusOK, Payload: payload}
}

// Fail creates a failed result carrying err.
func Fail(err error) Result {
	return Result{Err: err}
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool {
	return r.Err != nil
}
