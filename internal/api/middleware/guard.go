package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// IdentityKey is the echo context key the guard stores the current
// identity under for downstream handlers.
const IdentityKey = "identity"

// Guard protects a view that declares a required role. The decision is
// re-evaluated on every request against the session store:
// unauthenticated callers are redirected to the login view, callers
// with a different role to their own dashboard. The checks are
// advisory, matching client-side routing; nothing here is a trust
// boundary.
func Guard(sessions ports.SessionReader, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := sessions.Current()
			decision := domain.Authorize(required, current)
			if !decision.Allow {
				reason := "role_mismatch"
				if current == nil {
					reason = "unauthenticated"
				}
				metrics.GuardRedirectsTotal.WithLabelValues(reason).Inc()
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			c.Set(IdentityKey, current)
			return next(c)
		}
	}
}
