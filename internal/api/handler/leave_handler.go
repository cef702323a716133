package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// LeaveHandler serves the employee leave-request view, the HR approval
// queue, and the admin oversight list.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

type applyLeaveRequest struct {
	Type      string `json:"type"       validate:"required,oneof=annual sick personal maternity emergency"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     validate:"required"`
}

type decideLeaveRequest struct {
	Comments string `json:"comments"`
}

// Apply files a leave request for the caller.
//
// @Summary      Apply for leave
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body  body      applyLeaveRequest  true  "Leave type, inclusive date range, and reason"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /dashboard/employee/leave [post]
func (h *LeaveHandler) Apply(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	request, err := h.service.Apply(c.Request().Context(), ports.ApplyLeaveInput{
		Employee:  identity.Email,
		Type:      domain.LeaveType(req.Type),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

// List returns the caller's leave requests.
//
// @Summary      List own leave requests
// @Tags         leave
// @Produce      json
// @Success      200  {array}  domain.LeaveRequest
// @Router       /dashboard/employee/leave [get]
func (h *LeaveHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListByEmployee(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Balance returns the caller's remaining allocations.
//
// @Summary      Leave balance
// @Tags         leave
// @Produce      json
// @Success      200  {object}  domain.LeaveBalance
// @Router       /dashboard/employee/leave/balance [get]
func (h *LeaveHandler) Balance(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	balance, err := h.service.Balance(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, balance)
}

// ListAll returns every leave request, for the HR approval queue and
// the admin oversight view.
//
// @Summary      List all leave requests
// @Tags         leave
// @Produce      json
// @Success      200  {array}  domain.LeaveRequest
// @Router       /dashboard/hr/leave-approvals [get]
func (h *LeaveHandler) ListAll(c echo.Context) error {
	requests, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Approve approves a pending request.
//
// @Summary      Approve a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Leave request ID"
// @Param        body  body      decideLeaveRequest  true  "Optional HR comments"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /dashboard/hr/leave-approvals/{id}/approve [post]
func (h *LeaveHandler) Approve(c echo.Context) error {
	return h.decide(c, true)
}

// Reject rejects a pending request.
//
// @Summary      Reject a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Leave request ID"
// @Param        body  body      decideLeaveRequest  true  "Optional HR comments"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /dashboard/hr/leave-approvals/{id}/reject [post]
func (h *LeaveHandler) Reject(c echo.Context) error {
	return h.decide(c, false)
}

func (h *LeaveHandler) decide(c echo.Context, approve bool) error {
	var req decideLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	request, err := h.service.Decide(c.Request().Context(), ports.DecideLeaveInput{
		ID:       c.Param("id"),
		Approve:  approve,
		Comments: req.Comments,
	})
	if err != nil {
		return err
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(string(request.Status)).Inc()
	return c.JSON(http.StatusOK, request)
}
