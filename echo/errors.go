package echo

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// DecodeError is returned when a request body cannot be read or
// is not valid UTF-8.
type DecodeError struct {
	// Offset is the position of the first offending byte. It is
	// -1 if the body could not be read.
	Offset int

	// Byte is the first offending byte.
	Byte byte

	// Reason describes why the byte could not be decoded.
	Reason string

	// Err is the underlying error.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("failed to read body: %v", e.Err)
	}

	return fmt.Sprintf(
		"'utf-8' codec can't decode byte 0x%02x in position %d: %s",
		e.Byte,
		e.Offset,
		e.Reason,
	)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is, or wraps, a DecodeError.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}

	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

func newReadError(err error) *DecodeError {
	return &DecodeError{Offset: -1, Err: err}
}

// newInvalidUTF8Error describes the invalid sequence starting at
// offset in body.
func newInvalidUTF8Error(body []byte, offset int, err error) *DecodeError {
	b := body[offset]

	reason := "invalid start byte"
	switch {
	case !utf8.FullRune(body[offset:]) && isLeadByte(b):
		reason = "unexpected end of data"
	case isLeadByte(b):
		reason = "invalid continuation byte"
	}

	return &DecodeError{
		Offset: offset,
		Byte:   b,
		Reason: reason,
		Err:    err,
	}
}

// isLeadByte reports whether b can start a multi-byte sequence.
func isLeadByte(b byte) bool {
	return b >= 0xc2 && b <= 0xf4
}

// StatusCode returns the status code used to report the error.
func (e *DecodeError) StatusCode() int {
	return http.StatusInternalServerError
}

// statusError is implemented by errors that map to a status code.
type statusError interface {
	error
	StatusCode() int
}

// ErrorStatus returns the status code used to report err.
func ErrorStatus(err error) int {
	var statusErr statusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode()
	}

	return http.StatusInternalServerError
}
