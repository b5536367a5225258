package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/vocab-builder/internal/http"
	"github.com/yungbote/vocab-builder/internal/observability"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Router   *gin.Engine

	// Stdout receives the startup confirmation line.
	Stdout io.Writer

	server       *nethttp.Server
	otelShutdown observability.ShutdownFunc
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Config loaded", "port", cfg.HTTP.Port, "mongo_database", cfg.Mongo.Database)

	if isProduction(cfg.Log.Mode) {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.OTel)

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = otelShutdown(context.Background())
		log.Sync()
		return nil, err
	}

	repos := wireRepos(clients.Mongo.Database, log)
	services := wireServices(log, repos, clients)
	handlers := wireHandlers(log, services, clients.Mongo)
	router := wireRouter(log, cfg, handlers)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Clients:      clients,
		Repos:        repos,
		Services:     services,
		Router:       router,
		Stdout:       os.Stdout,
		server:       newServer(cfg, router),
		otelShutdown: otelShutdown,
	}, nil
}

func newServer(cfg Config, router *gin.Engine) *nethttp.Server {
	return http.NewServer(http.ServerConfig{
		Addr:              cfg.HTTP.Addr(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}, router)
}

func isProduction(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// Run binds the listener and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := a.Listen()
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Listen binds the configured port and writes the startup line.
func (a *App) Listen() (net.Listener, error) {
	if a == nil || a.Router == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	if a.server == nil {
		a.server = newServer(a.Cfg, a.Router)
	}
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", a.server.Addr, err)
	}
	port := a.Cfg.HTTP.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	out := a.Stdout
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Server started on port %d\n", port)
	if a.Log != nil {
		a.Log.Info("HTTP server listening", "addr", ln.Addr().String())
	}
	return ln, nil
}

// Serve blocks until ctx is done, then drains in-flight requests within
// the shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if a.Log != nil {
			a.Log.Info("HTTP server shutting down")
		}
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if a.Log != nil {
		a.Clients.Close(ctx, a.Log)
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
