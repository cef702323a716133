// Package directory provides the fixed in-memory identity table the
// session service logs against. It is deliberately a plain data
// structure so a real identity provider can replace it behind
// ports.DirectoryRepository without touching the guard or session code.
package directory

import (
	"context"
	"sort"
	"strings"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// Table maps lowercase email to Identity.
type Table struct {
	byEmail map[string]domain.Identity
}

// NewTable builds a Table from the given entries. Later duplicates of
// the same email overwrite earlier ones.
func NewTable(entries []domain.Identity) *Table {
	t := &Table{byEmail: make(map[string]domain.Identity, len(entries))}
	for _, e := range entries {
		t.byEmail[strings.ToLower(e.Email)] = e
	}
	return t
}

// FindByEmail returns a copy of the identity for the email, or
// domain.ErrEmployeeNotFound.
func (t *Table) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := t.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return &identity, nil
}

// List returns all identities ordered by ID.
func (t *Table) List(_ context.Context) ([]domain.Identity, error) {
	identities := make([]domain.Identity, 0, len(t.byEmail))
	for _, identity := range t.byEmail {
		identities = append(identities, identity)
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].ID < identities[j].ID
	})
	return identities, nil
}
