package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vendly/auction-api/internal/api/metrics"
	"github.com/vendly/auction-api/internal/core/domain"
)

// SessionResolver resolves a bearer token to a live user record. Implemented
// by the auth service; every call performs a fresh storage read.
type SessionResolver interface {
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
}

// userContextKey must match what the handler package reads back out.
const userContextKey = "user"

// Auth extracts the bearer token, resolves it to a user, and injects the
// user into the request context. Missing header, malformed scheme, invalid
// token, and vanished user all produce the same unauthorized outcome; the
// WWW-Authenticate challenge is added by the central error handler.
func Auth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.SessionResolutionsTotal.WithLabelValues("failure").Inc()
				return domain.ErrInvalidCredentials
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.SessionResolutionsTotal.WithLabelValues("failure").Inc()
				return domain.ErrInvalidCredentials
			}

			user, err := resolver.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				metrics.SessionResolutionsTotal.WithLabelValues("failure").Inc()
				return err
			}

			metrics.SessionResolutionsTotal.WithLabelValues("success").Inc()
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
