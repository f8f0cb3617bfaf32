package server

import (
	"fmt"
	"time"
)

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`

	// ReadHeaderTimeout bounds the time to read request headers.
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout"`

	// ReadTimeout bounds the time to read the entire request,
	// including the body. Zero means no timeout.
	ReadTimeout time.Duration `conf:"read_timeout"`

	// WriteTimeout bounds the time to write the response. Zero
	// means no timeout.
	WriteTimeout time.Duration `conf:"write_timeout"`

	// IdleTimeout bounds the time to wait for the next request on
	// a keep-alive connection. Zero means no timeout.
	IdleTimeout time.Duration `conf:"idle_timeout"`

	// MaxBodyBytes limits the size of request bodies. Zero means
	// no limit.
	MaxBodyBytes int64 `conf:"max_body_bytes"`
}

// DefaultConfig is the default HTTP configuration.
var DefaultConfig = HttpConfig{
	Host:              "0.0.0.0",
	Port:              8080,
	ReadHeaderTimeout: 10 * time.Second,
}

// Validate checks the configuration for invalid values.
func (c HttpConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("invalid max body bytes: %d", c.MaxBodyBytes)
	}

	return nil
}

// Address returns the listen address.
func (c HttpConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
