package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	appmw "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const rateLimitStoreExpiry = 3 * time.Minute

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RequestIDMW  *appmw.RequestIDMiddleware
	LoggerMW     *appmw.LoggerMiddleware
	ErrorMW      *appmw.ErrorMiddleware
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMW.HandleHTTPError

	echoServer.Use(echomw.Recover())
	echoServer.Use(params.RequestIDMW.Process)
	echoServer.Use(params.LoggerMW.Handle)
	echoServer.Use(corsMiddleware(params.Config))
	echoServer.Use(rateLimitMiddleware(params.Config))

	timeouts := params.Config.HTTP.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

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

// corsMiddleware applies the configured exact-origin allow-list. An empty
// list permits any origin, which is the development default.
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	if len(cfg.HTTP.AllowOrigins) == 0 {
		return echomw.CORS()
	}

	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
	})
}

// rateLimitMiddleware enforces the per-IP request budget on every route,
// rejecting callers before any handler runs.
func rateLimitMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	rpm := cfg.HTTP.RateLimit.RequestsPerMinute
	if rpm <= 0 {
		rpm = 5
	}
	burst := cfg.HTTP.RateLimit.Burst
	if burst <= 0 {
		burst = rpm
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rpm) / 60.0),
			Burst:     burst,
			ExpiresIn: rateLimitStoreExpiry,
		}),
	})
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.App.Port))
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
