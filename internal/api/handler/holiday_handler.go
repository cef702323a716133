package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// HolidayHandler serves the shared company calendar and its admin
// management view.
type HolidayHandler struct {
	service ports.HolidayService
}

func NewHolidayHandler(service ports.HolidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

type createHolidayRequest struct {
	Name        string `json:"name"        validate:"required"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Type        string `json:"type"        validate:"required,oneof=national religious company"`
	Description string `json:"description"`
}

// List returns the calendar, sorted by date. With ?upcoming=N only the
// next N holidays from today are returned.
//
// @Summary      List holidays
// @Tags         holidays
// @Produce      json
// @Param        upcoming  query     int  false  "Only the next N holidays"
// @Success      200       {array}   domain.Holiday
// @Failure      400       {object}  errorResponse
// @Router       /dashboard/{role}/holidays [get]
func (h *HolidayHandler) List(c echo.Context) error {
	if raw := c.QueryParam("upcoming"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "upcoming must be a positive number")
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		holidays, err := h.service.Upcoming(c.Request().Context(), today, limit)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, holidays)
	}

	holidays, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, holidays)
}

// Create adds a holiday to the calendar.
//
// @Summary      Add a holiday
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        body  body      createHolidayRequest  true  "Holiday details"
// @Success      201   {object}  domain.Holiday
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/admin/holidays [post]
func (h *HolidayHandler) Create(c echo.Context) error {
	var req createHolidayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, _ := parseDate(req.Date)
	holiday, err := h.service.Create(c.Request().Context(), ports.CreateHolidayInput{
		Name:        req.Name,
		Date:        date,
		Type:        domain.HolidayType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, holiday)
}

// Delete removes a holiday from the calendar.
//
// @Summary      Remove a holiday
// @Tags         holidays
// @Param        id  path  string  true  "Holiday ID"
// @Success      204  "holiday removed"
// @Failure      404  {object}  errorResponse
// @Router       /dashboard/admin/holidays/{id} [delete]
func (h *HolidayHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
