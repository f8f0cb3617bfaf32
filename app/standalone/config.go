package standalone

import (
	"github.com/lambda-feedback/echoserver/internal/server"
	"github.com/lambda-feedback/echoserver/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

// DefaultConfig returns the defaults for the standalone server.
func DefaultConfig() conf.DefaultConfig {
	d := server.DefaultConfig

	return conf.DefaultConfig{
		"host":                d.Host,
		"port":                d.Port,
		"h2c":                 d.H2c,
		"read_header_timeout": d.ReadHeaderTimeout,
		"read_timeout":        d.ReadTimeout,
		"write_timeout":       d.WriteTimeout,
		"idle_timeout":        d.IdleTimeout,
		"max_body_bytes":      d.MaxBodyBytes,
	}
}
