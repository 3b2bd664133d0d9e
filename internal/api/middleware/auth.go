package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/api/metrics"
	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// Auth resolves the bearer credential to a local user and injects it into the
// request context under "user". Resolution provisions an account on first
// sight, so any validly signed provider token yields a principal.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				metrics.AuthResolutionsTotal.WithLabelValues("missing").Inc()
				return err
			}

			user, err := resolver.Resolve(c.Request().Context(), raw)
			if err != nil {
				metrics.AuthResolutionsTotal.WithLabelValues(resolutionLabel(err)).Inc()
				return err
			}

			metrics.AuthResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set("user", user)
			return next(c)
		}
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func resolutionLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrIdentityUnresolved):
		return "unresolved"
	default:
		return "error"
	}
}
