package cmd

import (
	"time"

	"github.com/lambda-feedback/echoserver/app"
	"github.com/lambda-feedback/echoserver/app/standalone"
	"github.com/lambda-feedback/echoserver/config"
	"github.com/lambda-feedback/echoserver/util/conf"
	"github.com/lambda-feedback/echoserver/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	serveCmdDescription = `The serve command starts a http server that answers
	GET /health with a fixed status document and echoes the
	headers and body of every POST request, on any path, back
	to the caller as JSON.

	The command will launch the http server and blocks indefin-
	itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and echo requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "0.0.0.0",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"ECHOSERVER_PORT", "PYECHOSERVER_PORT", "HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The maximum duration for reading request headers.",
				Value:    10 * time.Second,
				Category: "http",
				EnvVars:  []string{"HTTP_READ_HEADER_TIMEOUT"},
			},
			&cli.DurationFlag{
				Name:     "read-timeout",
				Usage:    "The maximum duration for reading the entire request. 0 disables the timeout.",
				Category: "http",
				EnvVars:  []string{"HTTP_READ_TIMEOUT"},
			},
			&cli.DurationFlag{
				Name:     "write-timeout",
				Usage:    "The maximum duration for writing the response. 0 disables the timeout.",
				Category: "http",
				EnvVars:  []string{"HTTP_WRITE_TIMEOUT"},
			},
			&cli.DurationFlag{
				Name:     "idle-timeout",
				Usage:    "The maximum duration to wait for the next request on a keep-alive connection.",
				Category: "http",
				EnvVars:  []string{"HTTP_IDLE_TIMEOUT"},
			},
			&cli.Int64Flag{
				Name:     "max-body-bytes",
				Usage:    "The maximum size of a request body in bytes. 0 disables the limit.",
				Category: "http",
				EnvVars:  []string{"HTTP_MAX_BODY_BYTES"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Defaults:  standalone.DefaultConfig(),
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		Log:       log,
		Cli:       ctx,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
