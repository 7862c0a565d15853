package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// answers 500
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	adminID := AdminID(c)
	if adminID == "" {
		adminID = "anonymous"
	}
	requestID := GetRequestID(c)

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("admin_id", adminID),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}

	response := map[string]interface{}{
		"success": false,
		"status":  "error",
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		response["request_id"] = requestID
	}

	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
