// Package http wires the echo server that fronts the service.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"passport/config"
	"passport/internal/delivery"
	deliverymiddleware "passport/internal/delivery/middleware"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/lifecycle"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Use(deliverymiddleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())
	if params.Config.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	applyServerTimeouts(echoServer, params.Config)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func applyServerTimeouts(e *echo.Echo, cfg *config.Config) {
	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
