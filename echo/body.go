package echo

import (
	"context"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeBody reads r until EOF and decodes the bytes as UTF-8
// text. Read failures and invalid byte sequences are returned as
// a *DecodeError. Reading stops once ctx is done.
func DecodeBody(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}

	raw, err := io.ReadAll(&contextReader{ctx: ctx, r: r})
	if err != nil {
		return "", newReadError(err)
	}

	text, n, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		if n >= len(raw) {
			return "", newReadError(err)
		}
		return "", newInvalidUTF8Error(raw, n, err)
	}

	return string(text), nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
