package shell

import (
	"errors"
	"fmt"
)

type ExitError struct {
	ExitCode int

	// Err is the error that caused the exit, if any.
	Err error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shell exited with %d: %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("shell exited with %d", e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(exitCode int, err error) *ExitError {
	return &ExitError{ExitCode: exitCode, Err: err}
}

func IsExitError(err error) bool {
	if err == nil {
		return false
	}

	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// ExitCode returns the exit code carried by err. It is 0 for a
// nil error and 1 for errors other than ExitError.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	return 1
}
