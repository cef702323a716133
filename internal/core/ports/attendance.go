package ports

import (
	"context"
	"time"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// AttendanceStore holds at most one check-in record per role. Get
// returns (nil, nil) when the role is not checked in.
type AttendanceStore interface {
	Get(ctx context.Context, role domain.Role) (*domain.CheckIn, error)
	Set(ctx context.Context, role domain.Role, record domain.CheckIn) error
	Clear(ctx context.Context, role domain.Role) error
}

// CheckInStatus is the dashboard view of the current attendance state.
type CheckInStatus struct {
	CheckedIn bool
	Since     time.Time
	Elapsed   time.Duration
}

// AttendanceService implements the check-in/out action on the
// employee and HR dashboards.
type AttendanceService interface {
	CheckIn(ctx context.Context, role domain.Role) (*CheckInStatus, error)
	CheckOut(ctx context.Context, role domain.Role) (time.Duration, error)
	Status(ctx context.Context, role domain.Role) (*CheckInStatus, error)
}
