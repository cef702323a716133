package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

type stubLeaveRepo struct {
	requests map[string]*domain.LeaveRequest
	nextID   int
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{requests: make(map[string]*domain.LeaveRequest)}
}

func (r *stubLeaveRepo) Insert(_ context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.nextID++
	clone := *request
	clone.ID = strconv.Itoa(r.nextID)
	r.requests[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLeaveRepo) FindByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrLeaveNotFound
	}
	clone := *request
	return &clone, nil
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, employee string) ([]domain.LeaveRequest, error) {
	out := []domain.LeaveRequest{}
	for _, request := range r.requests {
		if request.Employee == employee {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) ListAll(_ context.Context) ([]domain.LeaveRequest, error) {
	out := []domain.LeaveRequest{}
	for _, request := range r.requests {
		out = append(out, *request)
	}
	return out, nil
}

func (r *stubLeaveRepo) Update(_ context.Context, request *domain.LeaveRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return domain.ErrLeaveNotFound
	}
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLeaveService_Apply(t *testing.T) {
	svc := NewLeaveService(newStubLeaveRepo(), zerolog.Nop())

	created, err := svc.Apply(context.Background(), ports.ApplyLeaveInput{
		Employee:  "employee@company.com",
		Type:      domain.LeaveAnnual,
		StartDate: date("2026-03-02"),
		EndDate:   date("2026-03-06"),
		Reason:    "vacation",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if created.Status != domain.LeavePending {
		t.Fatalf("new request should be pending, got %s", created.Status)
	}
	if created.Days != 5 {
		t.Fatalf("expected 5 inclusive days, got %d", created.Days)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestLeaveService_Apply_InvalidRange(t *testing.T) {
	svc := NewLeaveService(newStubLeaveRepo(), zerolog.Nop())

	_, err := svc.Apply(context.Background(), ports.ApplyLeaveInput{
		Employee:  "employee@company.com",
		Type:      domain.LeaveSick,
		StartDate: date("2026-03-06"),
		EndDate:   date("2026-03-02"),
	})
	if !errors.Is(err, domain.ErrInvalidLeaveRange) {
		t.Fatalf("expected ErrInvalidLeaveRange, got %v", err)
	}
}

func TestLeaveService_Decide(t *testing.T) {
	repo := newStubLeaveRepo()
	svc := NewLeaveService(repo, zerolog.Nop())

	created, err := svc.Apply(context.Background(), ports.ApplyLeaveInput{
		Employee:  "employee@company.com",
		Type:      domain.LeaveAnnual,
		StartDate: date("2026-03-02"),
		EndDate:   date("2026-03-03"),
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	decided, err := svc.Decide(context.Background(), ports.DecideLeaveInput{
		ID:       created.ID,
		Approve:  true,
		Comments: "enjoy",
	})
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != domain.LeaveApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}
	if decided.HRComments != "enjoy" {
		t.Fatalf("comments not recorded: %q", decided.HRComments)
	}

	// A decided request is final.
	if _, err := svc.Decide(context.Background(), ports.DecideLeaveInput{ID: created.ID, Approve: false}); !errors.Is(err, domain.ErrLeaveAlreadyDecided) {
		t.Fatalf("expected ErrLeaveAlreadyDecided, got %v", err)
	}
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	svc := NewLeaveService(newStubLeaveRepo(), zerolog.Nop())
	if _, err := svc.Decide(context.Background(), ports.DecideLeaveInput{ID: "missing"}); !errors.Is(err, domain.ErrLeaveNotFound) {
		t.Fatalf("expected ErrLeaveNotFound, got %v", err)
	}
}

func TestLeaveService_Balance(t *testing.T) {
	repo := newStubLeaveRepo()
	svc := NewLeaveService(repo, zerolog.Nop())

	apply := func(lt domain.LeaveType, start, end string) string {
		t.Helper()
		created, err := svc.Apply(context.Background(), ports.ApplyLeaveInput{
			Employee:  "employee@company.com",
			Type:      lt,
			StartDate: date(start),
			EndDate:   date(end),
		})
		if err != nil {
			t.Fatalf("Apply returned error: %v", err)
		}
		return created.ID
	}

	approved := apply(domain.LeaveAnnual, "2026-03-02", "2026-03-04") // 3 days
	apply(domain.LeaveAnnual, "2026-04-01", "2026-04-02")             // pending, 2 days
	rejected := apply(domain.LeaveSick, "2026-05-01", "2026-05-01")   // 1 day

	if _, err := svc.Decide(context.Background(), ports.DecideLeaveInput{ID: approved, Approve: true}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.Decide(context.Background(), ports.DecideLeaveInput{ID: rejected, Approve: false}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	balance, err := svc.Balance(context.Background(), "employee@company.com")
	if err != nil {
		t.Fatalf("Balance returned error: %v", err)
	}

	// Only approved requests count against the allocation.
	if balance.Annual.Used != 3 || balance.Annual.Remaining != domain.AnnualLeaveAllocation-3 {
		t.Fatalf("unexpected annual balance: %+v", balance.Annual)
	}
	if balance.Sick.Used != 0 || balance.Sick.Remaining != domain.SickLeaveAllocation {
		t.Fatalf("rejected leave must not count: %+v", balance.Sick)
	}
	if balance.Personal.Used != 0 {
		t.Fatalf("untouched type should be unused: %+v", balance.Personal)
	}
}
