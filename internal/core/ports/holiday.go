package ports

import (
	"context"
	"time"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// HolidayRepository persists company calendar entries.
type HolidayRepository interface {
	Insert(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	List(ctx context.Context) ([]domain.Holiday, error)
	Delete(ctx context.Context, id string) error
}

// CreateHolidayInput carries the admin "add holiday" form.
type CreateHolidayInput struct {
	Name        string
	Date        time.Time
	Type        domain.HolidayType
	Description string
}

// HolidayService defines the shared calendar and its admin management.
type HolidayService interface {
	Create(ctx context.Context, input CreateHolidayInput) (*domain.Holiday, error)

	// List returns all holidays sorted by date ascending.
	List(ctx context.Context) ([]domain.Holiday, error)

	// Upcoming returns at most limit holidays on or after the given day.
	Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Holiday, error)

	Delete(ctx context.Context, id string) error
}
