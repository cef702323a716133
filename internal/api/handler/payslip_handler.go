package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/core/ports"
)

// PayslipHandler serves the employee payslip view and the HR/admin
// payslip upload.
type PayslipHandler struct {
	service ports.PayslipService
}

func NewPayslipHandler(service ports.PayslipService) *PayslipHandler {
	return &PayslipHandler{service: service}
}

type uploadPayslipRequest struct {
	Employee    string  `json:"employee"     validate:"required,email"`
	Month       int     `json:"month"        validate:"required,gte=1,lte=12"`
	Year        int     `json:"year"         validate:"required,gte=2000"`
	GrossSalary float64 `json:"gross_salary" validate:"required,gt=0"`
	Deductions  float64 `json:"deductions"   validate:"gte=0"`
}

// List returns the caller's payslips, optionally filtered by ?year=.
//
// @Summary      List own payslips
// @Tags         payslips
// @Produce      json
// @Param        year  query     int  false  "Filter by year"
// @Success      200   {array}   domain.Payslip
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/employee/payslips [get]
func (h *PayslipHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	year := 0
	if raw := c.QueryParam("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "year must be a number")
		}
	}

	payslips, err := h.service.ListByEmployee(c.Request().Context(), identity.Email, year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payslips)
}

// Download marks a payslip downloaded and returns it.
//
// @Summary      Download a payslip
// @Tags         payslips
// @Produce      json
// @Param        id  path      string  true  "Payslip ID"
// @Success      200  {object}  domain.Payslip
// @Failure      404  {object}  errorResponse
// @Router       /dashboard/employee/payslips/{id}/download [post]
func (h *PayslipHandler) Download(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	payslip, err := h.service.Download(c.Request().Context(), c.Param("id"), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payslip)
}

// Upload records a new payslip for an employee.
//
// @Summary      Upload a payslip
// @Tags         payslips
// @Accept       json
// @Produce      json
// @Param        body  body      uploadPayslipRequest  true  "Payslip details; net salary is computed"
// @Success      201   {object}  domain.Payslip
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /dashboard/hr/payslips [post]
func (h *PayslipHandler) Upload(c echo.Context) error {
	var req uploadPayslipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payslip, err := h.service.Upload(c.Request().Context(), ports.UploadPayslipInput{
		Employee:    req.Employee,
		Month:       time.Month(req.Month),
		Year:        req.Year,
		GrossSalary: req.GrossSalary,
		Deductions:  req.Deductions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payslip)
}

// ListAll returns every payslip for the HR/admin management view.
//
// @Summary      List all payslips
// @Tags         payslips
// @Produce      json
// @Success      200  {array}  domain.Payslip
// @Router       /dashboard/hr/payslips [get]
func (h *PayslipHandler) ListAll(c echo.Context) error {
	payslips, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payslips)
}
