package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lambda-feedback/echoserver/config"
	"github.com/lambda-feedback/echoserver/internal/shell"
	"github.com/lambda-feedback/echoserver/util/conf"
	"github.com/lambda-feedback/echoserver/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	appName  = "echoserver"
	appUsage = `An HTTP test double that echoes back the headers and body
of every request it receives, for integration tests that need
to observe exactly what a client sent.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags:           rootFlags(),
		Before: func(ctx *cli.Context) error {
			// parse config from defaults, config file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				Defaults:  config.DefaultConfig,
				EnvPrefix: config.EnvPrefix,
				FileName:  ctx.Path("config"),
			})
			if err != nil {
				return err
			}

			// create the logger from the parsed config
			log, err := createLogger(cfg)
			if err != nil {
				return err
			}

			// inject logger and config into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// no logger if Before failed
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				log.Sync()
			}

			return nil
		},
	}
)

func rootFlags() []cli.Flag {
	return []cli.Flag{
		// general flags
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "set the log format. Options: production, development.",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.PathFlag{
			Name:    "config",
			Usage:   "load configuration from a .json or .env file.",
			Aliases: []string{"c"},
			EnvVars: []string{"ECHOSERVER_CONFIG"},
		},
	}
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the app with the process arguments and returns
// the exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

// run runs the app and returns the process exit code.
func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code,
	// otherwise, exit with exit code 1
	code := shell.ExitCode(err)

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	return code
}

func createLogger(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if logFormat(cfg.LogFormat) == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	zcfg.InitialFields = map[string]any{
		"app": appName,
	}

	zcfg.Level = logLevel(cfg.LogLevel)

	return zcfg.Build()
}

func logFormat(format string) string {
	if format != "" {
		return format
	}

	return "production"
}

func logLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
