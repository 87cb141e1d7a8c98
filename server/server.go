package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/jonwraymond/devops-info-service/observe"
)

// Server hosts the HTTP API.
type Server struct {
	cfg    Config
	http   *http.Server
	logger observe.Logger

	mu       sync.Mutex
	listener net.Listener
	errc     chan error
}

// New builds a Server for cfg. It does not listen until Start or
// ListenAndServe is called.
func New(cfg Config, deps Deps) (*Server, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	router, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:    cfg,
		logger: deps.Logger,
		errc:   make(chan error, 1),
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          observe.NewStdLog(deps.Logger, observe.LevelWarn),
			BaseContext: func(net.Listener) context.Context {
				return context.Background()
			},
		},
	}, nil
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

// Start binds the listen address and serves in a background goroutine.
// Bind failures are returned; later serve failures are reported by
// ListenAndServe and logged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	ctx := context.Background()
	s.logger.Info(ctx, "listening", observe.F("addr", ln.Addr().String()))
	go func() {
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "serve failed", observe.F("error", err))
			s.errc <- err
		}
	}()
	return nil
}

// ListenAndServe starts the server and blocks until ctx is done or serving
// fails. On cancellation it shuts down gracefully and returns the shutdown
// result.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	select {
	case err := <-s.errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down")
	return s.Stop(context.Background())
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	if timeout := s.cfg.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.http.Shutdown(ctx)
}
