package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/middleware"
	"github.com/emsuite/employee-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the route guard and
// fast-fails before any service call: presence proves the guard ran on
// this route. Handlers reached without it are a wiring bug, reported
// as 401 rather than a panic.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}
