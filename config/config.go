package config

import "github.com/lambda-feedback/echoserver/util/conf"

// EnvPrefix is the prefix of env vars read into the config.
const EnvPrefix = "ECHOSERVER_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}
