package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request through the given logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				// let echo render the error so the status below is final
				c.Error(err)
			}

			if raw != "" {
				path = path + "?" + raw
			}

			adminID := "anonymous"
			if id := c.Get("admin_id"); id != nil {
				adminID = fmt.Sprintf("%v", id)
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				adminID,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
