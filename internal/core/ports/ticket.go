package ports

import (
	"context"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// TicketRepository persists support tickets.
type TicketRepository interface {
	Insert(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByEmployee(ctx context.Context, employee string) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
}

// CreateTicketInput carries the "raise ticket" form.
type CreateTicketInput struct {
	Employee    string
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
}

// RespondTicketInput carries an HR response and status move.
type RespondTicketInput struct {
	ID       string
	Response string
	Status   domain.TicketStatus
}

// TicketService defines the employee ticket flow and the HR desk.
type TicketService interface {
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	ListByEmployee(ctx context.Context, employee string) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	Respond(ctx context.Context, input RespondTicketInput) (*domain.Ticket, error)
}
