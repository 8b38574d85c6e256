package http

import (
	"context"
	"log/slog"

	"logistics/internal/pkg/requestid"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const basePath = "/logistics"

// NewEcho builds the echo instance with middleware and every route mounted
// under /logistics.
func NewEcho(ctx context.Context, s *Server, logLevel log.Lvl) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(logLevel)
	e.HTTPErrorHandler = s.HTTPErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    requestid.New,
		TargetHeader: requestid.Header,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(requestid.WithID(req.Context(), id)))
		},
	}))
	e.Use(requestLogger(s.logger))
	e.Use(middleware.Recover())

	g := e.Group(basePath)
	g.GET("/ping", s.Ping)
	g.GET("/ready", s.Ready)
	g.GET("/openapi.yaml", s.OpenAPI)
	g.GET("/swagger/*", echoSwagger.WrapHandler)

	api := g.Group("", validator.Middleware())
	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.ListRoutes)
	api.DELETE("/routes", s.DeleteRoutes)
	api.GET("/routes/:id", s.GetRoute)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.Log(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
