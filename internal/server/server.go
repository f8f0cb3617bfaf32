package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Routes []*Route `group:"routes"`
	Logger *zap.Logger
}

type HttpServer struct {
	ctx      context.Context
	config   HttpConfig
	server   *http.Server
	listener net.Listener
	log      *zap.Logger
}

func NewHttpServer(params HttpServerParams) (*HttpServer, error) {
	if err := params.Config.Validate(); err != nil {
		return nil, err
	}

	mux, err := NewServeMux(params.Routes)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = mux
	if params.Config.MaxBodyBytes > 0 {
		handler = http.MaxBytesHandler(handler, params.Config.MaxBodyBytes)
	}

	// report panics, then let net/http recover the connection
	handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)

	if params.Config.H2c {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	baseCtx := params.Context
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	server := &http.Server{
		Addr:              params.Config.Address(),
		Handler:           handler,
		ReadHeaderTimeout: params.Config.ReadHeaderTimeout,
		ReadTimeout:       params.Config.ReadTimeout,
		WriteTimeout:      params.Config.WriteTimeout,
		IdleTimeout:       params.Config.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return &HttpServer{
		ctx:    baseCtx,
		config: params.Config,
		server: server,
		log:    params.Logger,
	}, nil
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) (*HttpServer, error) {
	server, err := NewHttpServer(params)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := server.Listen(ctx); err != nil {
				return err
			}
			go server.Serve()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})

	return server, nil
}

// Listen binds the listener. It must be called before Serve.
func (s *HttpServer) Listen(ctx context.Context) error {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.config.Address())
	if err != nil {
		s.log.With(zap.Error(err)).Error("failed to listen")
		return err
	}

	s.listener = listener

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	return nil
}

// Addr returns the bound address, or nil if not listening.
func (s *HttpServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Serve accepts connections on the bound listener until the
// server is shut down.
func (s *HttpServer) Serve() error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.With(zap.Error(err)).Error("failed to serve")
		return err
	}

	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	return nil
}
