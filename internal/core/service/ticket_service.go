package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// TicketService implements the employee help desk and the HR response
// queue.
type TicketService struct {
	repo   ports.TicketRepository
	logger zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, logger zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, logger: logger}
}

// Create opens a new ticket in open state.
func (s *TicketService) Create(ctx context.Context, input ports.CreateTicketInput) (*domain.Ticket, error) {
	now := time.Now().UTC()
	ticket := &domain.Ticket{
		Employee:    input.Employee,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, ticket)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee", created.Employee).
		Str("category", string(created.Category)).
		Str("ticket_id", created.ID).
		Msg("ticket opened")
	return created, nil
}

func (s *TicketService) ListByEmployee(ctx context.Context, employee string) ([]domain.Ticket, error) {
	return s.repo.ListByEmployee(ctx, employee)
}

func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.repo.ListAll(ctx)
}

// Respond records an HR response and moves the ticket status.
func (s *TicketService) Respond(ctx context.Context, input ports.RespondTicketInput) (*domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	ticket.HRResponse = input.Response
	ticket.Status = input.Status
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("ticket_id", ticket.ID).
		Str("status", string(ticket.Status)).
		Msg("ticket responded")
	return ticket, nil
}
