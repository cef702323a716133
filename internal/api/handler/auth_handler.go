package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// AuthHandler exposes the login view's operations over the session
// service.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=employee hr admin"`
}

type loginResponse struct {
	User       *domain.Identity `json:"user"`
	RedirectTo string           `json:"redirect_to"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
	Pending       bool             `json:"pending"`
}

// Login authenticates against the fixed directory.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials and claimed role"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The submit button equivalent: refuse resubmission while a login
	// is in flight so two calls never race for the session slot.
	if h.sessions.Pending() {
		return domain.ErrLoginInProgress
	}

	if !h.sessions.Login(c.Request().Context(), req.Email, req.Password, domain.Role(req.Role)) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		// One message for every rejection reason.
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	user := h.sessions.Current()
	return c.JSON(http.StatusOK, loginResponse{
		User:       user,
		RedirectTo: domain.DefaultRoute(user.Role),
	})
}

// Logout clears the session. Logging out twice is still a 204.
//
// @Summary      Log out
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: user != nil,
		User:          user,
		Pending:       h.sessions.Pending(),
	})
}
