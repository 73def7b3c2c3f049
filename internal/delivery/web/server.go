// Package web serves the server-rendered frontend of the directory.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"brandhub/config"
	"brandhub/internal/delivery"
	"brandhub/internal/delivery/middleware"
	"brandhub/internal/domain/lifecycle"
	"brandhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the web server, injected by Fx.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Provider BrandProvider
}

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := NewEcho(params.Config, params.Logger, params.Provider)
	if err != nil {
		return nil, err
	}

	srv := &webServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the frontend echo instance without starting it.
func NewEcho(cfg *config.Config, logger *slog.Logger, provider BrandProvider) (*echo.Echo, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	h := &pageHandler{
		provider: provider,
		logger:   logger,
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	echoServer.Renderer = pages
	echoServer.HTTPErrorHandler = h.handleHTTPError

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg.Env.Debug).Handle)

	echoServer.GET("/", h.index)
	echoServer.GET("/brands/:id", h.brand)
	echoServer.GET("/agents", h.agents)
	echoServer.GET("/health", health)

	return echoServer, nil
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Web.Port))
	s.logger.Info("Starting web server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve web")
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
