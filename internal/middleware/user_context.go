package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderUserID is the header set by the upstream gateway after it has
	// authenticated the caller
	HeaderUserID = "X-User-ID"

	// userIDContextKey is the echo context key for the resolved user ID
	userIDContextKey = "user_id"
)

// UserContext returns an Echo middleware that resolves the caller's identity
// from the gateway-provided X-User-ID header. Requests without a valid user
// UUID are rejected before reaching any handler.
func UserContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return unauthorizedError(c, "missing "+HeaderUserID+" header")
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				return unauthorizedError(c, "invalid "+HeaderUserID+" header")
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(userIDContextKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
