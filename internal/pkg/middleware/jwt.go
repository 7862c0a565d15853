package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/evoting/internal/pkg/jwt"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
)

// Context keys set by the middleware in this package
const (
	ContextKeyRequestID  = "request_id"
	ContextKeyAdminID    = "admin_id"
	ContextKeyAdminEmail = "admin_email"
	ContextKeyAdminRole  = "admin_role"
)

// JWTAuthMiddleware authenticates admin requests with a bearer token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				logger.Debug("Rejected admin token", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyAdminID, claims.AdminID)
			c.Set(ContextKeyAdminEmail, claims.Email)
			c.Set(ContextKeyAdminRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole rejects requests whose token role is not in roles. It must run
// after JWTAuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyAdminRole).(string)
			if _, ok := allowed[role]; !ok {
				logger.Warn("Role check failed",
					logger.String("admin_id", AdminID(c)),
					logger.String("role", role),
					logger.String("path", c.Path()))
				return utils.ForbiddenResponse(c, "You do not have permission to perform this action")
			}
			return next(c)
		}
	}
}

// AdminID returns the authenticated admin id or an empty string
func AdminID(c echo.Context) string {
	id, _ := c.Get(ContextKeyAdminID).(string)
	return id
}

// AdminEmail returns the authenticated admin email or an empty string
func AdminEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyAdminEmail).(string)
	return email
}
