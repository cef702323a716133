package ports

import (
	"context"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// DirectoryRepository is the identity provider consulted at login and
// by the admin employee listing. The default implementation is a fixed
// in-memory table; a real provider can be swapped in without touching
// the session service or route guard.
type DirectoryRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	List(ctx context.Context) ([]domain.Identity, error)
}
