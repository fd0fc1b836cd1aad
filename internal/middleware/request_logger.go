package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger writes one zerolog line per request, leveled by status
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogLatency:   true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			// the error handler has not written the response yet
			var httpErr *echo.HTTPError
			if v.Error != nil && errors.As(v.Error, &httpErr) {
				status = httpErr.Code
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = log.Error().Err(v.Error)
			case status >= 400:
				e = log.Warn()
			default:
				e = log.Info()
			}
			if v.RequestID != "" {
				e = e.Str("request_id", v.RequestID)
			}
			e.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Msg("API")
			return nil
		},
	})
}
