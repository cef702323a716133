package ports

import (
	"context"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// SessionRepository persists the single session slot across restarts.
// Load returns (nil, nil) when no session is persisted and
// domain.ErrMalformedSession when the stored record cannot be decoded.
type SessionRepository interface {
	Load(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity *domain.Identity) error
	Clear(ctx context.Context) error
}

// SessionReader is the read-only view the route guard needs.
type SessionReader interface {
	Current() *domain.Identity
}

// SessionService is the single source of truth for "who is logged in".
// Only Login and Logout mutate the session slot.
type SessionService interface {
	SessionReader

	// Initialize restores a previously persisted identity. It never
	// fails the caller: a missing or malformed record means logged out.
	Initialize(ctx context.Context)

	// Login reports success as a bare boolean; wrong email, wrong
	// role-for-email, and wrong password are indistinguishable.
	Login(ctx context.Context, email, password string, claimedRole domain.Role) bool

	// Logout clears the slot and the persisted copy. Idempotent.
	Logout(ctx context.Context)

	// Pending reports whether a login call is in flight.
	Pending() bool
}
