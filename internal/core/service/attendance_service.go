package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// AttendanceService implements the check-in/out tile on the employee
// and HR dashboards over a per-role durable record.
type AttendanceService struct {
	store  ports.AttendanceStore
	now    func() time.Time
	logger zerolog.Logger
}

func NewAttendanceService(store ports.AttendanceStore, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{store: store, now: time.Now, logger: logger}
}

// CheckIn records the start of the workday. A second check-in without
// an intervening check-out is rejected.
func (s *AttendanceService) CheckIn(ctx context.Context, role domain.Role) (*ports.CheckInStatus, error) {
	existing, err := s.store.Get(ctx, role)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	now := s.now().UTC()
	if err := s.store.Set(ctx, role, domain.CheckIn{Time: now}); err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", string(role)).Time("since", now).Msg("checked in")
	return &ports.CheckInStatus{CheckedIn: true, Since: now}, nil
}

// CheckOut ends the workday and returns the worked duration.
func (s *AttendanceService) CheckOut(ctx context.Context, role domain.Role) (time.Duration, error) {
	record, err := s.store.Get(ctx, role)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, domain.ErrNotCheckedIn
	}

	if err := s.store.Clear(ctx, role); err != nil {
		return 0, err
	}

	worked := s.now().UTC().Sub(record.Time)
	s.logger.Info().Str("role", string(role)).Dur("worked", worked).Msg("checked out")
	return worked, nil
}

// Status reports the current attendance state for the dashboard tile.
func (s *AttendanceService) Status(ctx context.Context, role domain.Role) (*ports.CheckInStatus, error) {
	record, err := s.store.Get(ctx, role)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &ports.CheckInStatus{}, nil
	}
	return &ports.CheckInStatus{
		CheckedIn: true,
		Since:     record.Time,
		Elapsed:   s.now().UTC().Sub(record.Time),
	}, nil
}
