package ports

import (
	"context"
	"time"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// LeaveRepository persists leave requests.
type LeaveRepository interface {
	Insert(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employee string) ([]domain.LeaveRequest, error)
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
	Update(ctx context.Context, request *domain.LeaveRequest) error
}

// ApplyLeaveInput carries the "apply for leave" form.
type ApplyLeaveInput struct {
	Employee  string
	Type      domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// DecideLeaveInput carries an HR approval or rejection.
type DecideLeaveInput struct {
	ID       string
	Approve  bool
	Comments string
}

// LeaveService defines the employee request flow and the HR/admin
// review flow over leave requests.
type LeaveService interface {
	Apply(ctx context.Context, input ApplyLeaveInput) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employee string) ([]domain.LeaveRequest, error)
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
	Balance(ctx context.Context, employee string) (*domain.LeaveBalance, error)
	Decide(ctx context.Context, input DecideLeaveInput) (*domain.LeaveRequest, error)
}
