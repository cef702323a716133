package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

type stubTicketRepo struct {
	tickets map[string]*domain.Ticket
	nextID  int
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *stubTicketRepo) Insert(_ context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	r.nextID++
	clone := *ticket
	clone.ID = strconv.Itoa(r.nextID)
	r.tickets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	clone := *ticket
	return &clone, nil
}

func (r *stubTicketRepo) ListByEmployee(_ context.Context, employee string) ([]domain.Ticket, error) {
	out := []domain.Ticket{}
	for _, ticket := range r.tickets {
		if ticket.Employee == employee {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

func (r *stubTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	out := []domain.Ticket{}
	for _, ticket := range r.tickets {
		out = append(out, *ticket)
	}
	return out, nil
}

func (r *stubTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return domain.ErrTicketNotFound
	}
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func TestTicketService_Create(t *testing.T) {
	svc := NewTicketService(newStubTicketRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateTicketInput{
		Employee:    "employee@company.com",
		Title:       "laptop broken",
		Description: "screen flickers",
		Category:    domain.TicketTechnical,
		Priority:    domain.TicketHigh,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.TicketOpen {
		t.Fatalf("new ticket should be open, got %s", created.Status)
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected timestamps: %+v", created)
	}
}

func TestTicketService_Respond(t *testing.T) {
	repo := newStubTicketRepo()
	svc := NewTicketService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateTicketInput{
		Employee: "employee@company.com",
		Title:    "payslip question",
		Category: domain.TicketHR,
		Priority: domain.TicketLow,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	responded, err := svc.Respond(context.Background(), ports.RespondTicketInput{
		ID:       created.ID,
		Response: "fixed in the March run",
		Status:   domain.TicketResolved,
	})
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if responded.Status != domain.TicketResolved || responded.HRResponse != "fixed in the March run" {
		t.Fatalf("response not recorded: %+v", responded)
	}
	if !responded.UpdatedAt.After(created.UpdatedAt) && !responded.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("UpdatedAt not advanced: %+v", responded)
	}
}

func TestTicketService_Respond_NotFound(t *testing.T) {
	svc := NewTicketService(newStubTicketRepo(), zerolog.Nop())
	if _, err := svc.Respond(context.Background(), ports.RespondTicketInput{ID: "missing"}); !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}
