package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/logger"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents a standard API response
type Response struct {
	Success bool              `json:"success"`
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    int               `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Status:  StatusError,
		Message: errorMessage,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// StatusForKind maps an error kind to its HTTP status
func StatusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusUnprocessableEntity
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindLocked, apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindUpstream:
		return http.StatusBadGateway
	case apperror.KindSignature, apperror.KindAuth:
		return http.StatusUnauthorized
	case apperror.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// AppErrorResponse renders err according to its kind. Unclassified errors
// are logged and hidden behind a generic message.
func AppErrorResponse(c echo.Context, err error) error {
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind == apperror.KindInternal {
		logger.Error("Unhandled error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return InternalServerErrorResponse(c, "")
	}

	status := StatusForKind(appErr.Kind)
	return c.JSON(status, Response{
		Success: false,
		Status:  StatusError,
		Message: appErr.Message,
		Error:   appErr.Kind.String(),
		Code:    status,
		Errors:  appErr.Fields,
	})
}
