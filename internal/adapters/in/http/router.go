package http

import (
	"ordering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRouter builds the echo instance with request ids, request logging and
// panic recovery, and registers the server's routes.
func NewRouter(s *Server, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return kernel.NewCorrelationID().String()
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("got incoming HTTP request",
				zap.String("uri", v.URI),
				zap.String("method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("duration", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}))

	RegisterHandlers(e, s)
	return e
}

// RegisterHandlers wires the server's handlers to their routes.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.PlaceOrder)
}
