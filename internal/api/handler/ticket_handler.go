package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// TicketHandler serves the employee help desk and the HR response queue.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type createTicketRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=technical hr admin facility"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high urgent"`
}

type respondTicketRequest struct {
	Response string `json:"response" validate:"required"`
	Status   string `json:"status"   validate:"required,oneof=open in-progress resolved closed"`
}

// Create raises a new ticket for the caller.
//
// @Summary      Raise a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/employee/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.Create(c.Request().Context(), ports.CreateTicketInput{
		Employee:    identity.Email,
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.TicketCategory(req.Category),
		Priority:    domain.TicketPriority(req.Priority),
	})
	if err != nil {
		return err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(req.Category).Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// List returns the caller's tickets.
//
// @Summary      List own tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}  domain.Ticket
// @Router       /dashboard/employee/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tickets, err := h.service.ListByEmployee(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListAll returns every ticket for the HR desk.
//
// @Summary      List all tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}  domain.Ticket
// @Router       /dashboard/hr/tickets [get]
func (h *TicketHandler) ListAll(c echo.Context) error {
	tickets, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Respond records an HR response and status move on a ticket.
//
// @Summary      Respond to a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Ticket ID"
// @Param        body  body      respondTicketRequest  true  "Response text and new status"
// @Success      200   {object}  domain.Ticket
// @Failure      404   {object}  errorResponse
// @Router       /dashboard/hr/tickets/{id}/respond [post]
func (h *TicketHandler) Respond(c echo.Context) error {
	var req respondTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.Respond(c.Request().Context(), ports.RespondTicketInput{
		ID:       c.Param("id"),
		Response: req.Response,
		Status:   domain.TicketStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}
