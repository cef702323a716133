package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// LeaveService implements the employee leave-request flow and the
// HR review queue.
type LeaveService struct {
	repo   ports.LeaveRepository
	logger zerolog.Logger
}

func NewLeaveService(repo ports.LeaveRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{repo: repo, logger: logger}
}

// Apply files a new leave request in pending state. The day count is
// derived from the inclusive date range.
func (s *LeaveService) Apply(ctx context.Context, input ports.ApplyLeaveInput) (*domain.LeaveRequest, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidLeaveRange
	}

	request := &domain.LeaveRequest{
		Employee:    input.Employee,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Days:        domain.LeaveDays(input.StartDate, input.EndDate),
		Reason:      input.Reason,
		Status:      domain.LeavePending,
		AppliedDate: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee", created.Employee).
		Str("type", string(created.Type)).
		Int("days", created.Days).
		Msg("leave request filed")
	return created, nil
}

func (s *LeaveService) ListByEmployee(ctx context.Context, employee string) ([]domain.LeaveRequest, error) {
	return s.repo.ListByEmployee(ctx, employee)
}

func (s *LeaveService) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.repo.ListAll(ctx)
}

// Balance sums approved days per tracked leave type against the fixed
// annual allocations.
func (s *LeaveService) Balance(ctx context.Context, employee string) (*domain.LeaveBalance, error) {
	requests, err := s.repo.ListByEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	used := map[domain.LeaveType]int{}
	for _, r := range requests {
		if r.Status == domain.LeaveApproved {
			used[r.Type] += r.Days
		}
	}

	entry := func(total int, t domain.LeaveType) domain.LeaveBalanceEntry {
		u := used[t]
		if u > total {
			u = total
		}
		return domain.LeaveBalanceEntry{Total: total, Used: u, Remaining: total - u}
	}

	return &domain.LeaveBalance{
		Annual:   entry(domain.AnnualLeaveAllocation, domain.LeaveAnnual),
		Sick:     entry(domain.SickLeaveAllocation, domain.LeaveSick),
		Personal: entry(domain.PersonalLeaveAllocation, domain.LeavePersonal),
	}, nil
}

// Decide approves or rejects a pending request. Decided requests are
// final; a second decision is rejected.
func (s *LeaveService) Decide(ctx context.Context, input ports.DecideLeaveInput) (*domain.LeaveRequest, error) {
	request, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.LeavePending {
		return nil, domain.ErrLeaveAlreadyDecided
	}

	if input.Approve {
		request.Status = domain.LeaveApproved
	} else {
		request.Status = domain.LeaveRejected
	}
	request.HRComments = input.Comments

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee", request.Employee).
		Str("status", string(request.Status)).
		Str("leave_id", request.ID).
		Msg("leave request decided")
	return request, nil
}
