package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// AttendanceHandler serves the check-in/out tile on the employee and
// HR dashboard landing views.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type attendanceResponse struct {
	CheckedIn      bool   `json:"checked_in"`
	Since          string `json:"since,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds,omitempty"`
}

type checkOutResponse struct {
	WorkedSeconds int64 `json:"worked_seconds"`
}

// Status reports the attendance state for the caller's role.
//
// @Summary      Attendance status
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  attendanceResponse
// @Router       /dashboard/{role} [get]
func (h *AttendanceHandler) Status(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	status, err := h.service.Status(c.Request().Context(), identity.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttendanceResponse(status))
}

// CheckIn starts the workday.
//
// @Summary      Check in
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  attendanceResponse
// @Failure      409  {object}  errorResponse
// @Router       /dashboard/{role}/checkin [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	status, err := h.service.CheckIn(c.Request().Context(), identity.Role)
	if err != nil {
		return err
	}

	metrics.CheckinsTotal.WithLabelValues(string(identity.Role), "in").Inc()
	return c.JSON(http.StatusOK, toAttendanceResponse(status))
}

// CheckOut ends the workday and reports the worked duration.
//
// @Summary      Check out
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  checkOutResponse
// @Failure      409  {object}  errorResponse
// @Router       /dashboard/{role}/checkout [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	worked, err := h.service.CheckOut(c.Request().Context(), identity.Role)
	if err != nil {
		return err
	}

	metrics.CheckinsTotal.WithLabelValues(string(identity.Role), "out").Inc()
	return c.JSON(http.StatusOK, checkOutResponse{WorkedSeconds: int64(worked.Seconds())})
}

func toAttendanceResponse(status *ports.CheckInStatus) attendanceResponse {
	resp := attendanceResponse{CheckedIn: status.CheckedIn}
	if status.CheckedIn {
		resp.Since = status.Since.UTC().Format(time.RFC3339)
		resp.ElapsedSeconds = int64(status.Elapsed.Seconds())
	}
	return resp
}
