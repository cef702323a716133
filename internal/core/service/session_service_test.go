package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emsuite/employee-system/internal/core/domain"
)

type stubSessionRepo struct {
	stored  *domain.Identity
	loadErr error
	saveErr error
	saves   int
	clears  int
}

func (r *stubSessionRepo) Load(_ context.Context) (*domain.Identity, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.stored == nil {
		return nil, nil
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSessionRepo) Save(_ context.Context, identity *domain.Identity) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *identity
	r.stored = &clone
	return nil
}

func (r *stubSessionRepo) Clear(_ context.Context) error {
	r.clears++
	r.stored = nil
	return nil
}

type stubDirectory struct {
	identities map[string]domain.Identity
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := d.identities[email]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return &identity, nil
}

func (d *stubDirectory) List(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, 0, len(d.identities))
	for _, identity := range d.identities {
		out = append(out, identity)
	}
	return out, nil
}

const testPassword = "password"

func newTestSessionService(t *testing.T, repo *stubSessionRepo) *SessionService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}
	dir := &stubDirectory{identities: map[string]domain.Identity{
		"employee@company.com": {ID: "1", Email: "employee@company.com", Name: "John Smith", Role: domain.RoleEmployee},
		"hr@company.com":       {ID: "2", Email: "hr@company.com", Name: "Sarah Johnson", Role: domain.RoleHR},
	}}
	return NewSessionService(repo, dir, hash, time.Millisecond, zerolog.Nop())
}

func TestSessionService_Login_Success(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := newTestSessionService(t, repo)

	if !svc.Login(context.Background(), "employee@company.com", testPassword, domain.RoleEmployee) {
		t.Fatalf("expected login to succeed")
	}

	current := svc.Current()
	if current == nil || current.Email != "employee@company.com" {
		t.Fatalf("unexpected current identity: %+v", current)
	}
	if repo.stored == nil || repo.stored.Email != "employee@company.com" {
		t.Fatalf("expected session to be persisted, got %+v", repo.stored)
	}
	if svc.Pending() {
		t.Fatalf("pending should be false after login returns")
	}
}

func TestSessionService_Login_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"unknown email", "nobody@company.com", testPassword, domain.RoleEmployee},
		{"wrong password", "employee@company.com", "letmein", domain.RoleEmployee},
		{"role mismatch", "employee@company.com", testPassword, domain.RoleHR},
		{"unknown role", "employee@company.com", testPassword, domain.Role("root")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubSessionRepo{}
			svc := newTestSessionService(t, repo)

			if svc.Login(context.Background(), tc.email, tc.password, tc.role) {
				t.Fatalf("expected login to fail")
			}
			if svc.Current() != nil {
				t.Fatalf("failed login must not populate the session slot")
			}
			if repo.saves != 0 {
				t.Fatalf("failed login must not persist anything, saves=%d", repo.saves)
			}
		})
	}
}

func TestSessionService_Login_PersistFailureKeepsSession(t *testing.T) {
	repo := &stubSessionRepo{saveErr: context.DeadlineExceeded}
	svc := newTestSessionService(t, repo)

	if !svc.Login(context.Background(), "hr@company.com", testPassword, domain.RoleHR) {
		t.Fatalf("login should succeed even when persistence fails")
	}
	if svc.Current() == nil {
		t.Fatalf("in-memory session should survive a persist failure")
	}
}

func TestSessionService_Initialize_Restores(t *testing.T) {
	repo := &stubSessionRepo{stored: &domain.Identity{
		ID: "2", Email: "hr@company.com", Name: "Sarah Johnson", Role: domain.RoleHR,
	}}
	svc := newTestSessionService(t, repo)

	svc.Initialize(context.Background())

	current := svc.Current()
	if current == nil || current.Role != domain.RoleHR {
		t.Fatalf("expected restored HR session, got %+v", current)
	}
}

func TestSessionService_Initialize_Empty(t *testing.T) {
	svc := newTestSessionService(t, &stubSessionRepo{})
	svc.Initialize(context.Background())
	if svc.Current() != nil {
		t.Fatalf("no persisted record should mean logged out")
	}
}

func TestSessionService_Initialize_Malformed(t *testing.T) {
	repo := &stubSessionRepo{loadErr: domain.ErrMalformedSession}
	svc := newTestSessionService(t, repo)

	svc.Initialize(context.Background())
	if svc.Current() != nil {
		t.Fatalf("malformed persisted record should mean logged out")
	}
}

func TestSessionService_Initialize_UnknownRole(t *testing.T) {
	repo := &stubSessionRepo{stored: &domain.Identity{
		ID: "9", Email: "x@company.com", Role: domain.Role("owner"),
	}}
	svc := newTestSessionService(t, repo)

	svc.Initialize(context.Background())
	if svc.Current() != nil {
		t.Fatalf("persisted record with unknown role should mean logged out")
	}
}

func TestSessionService_RestartRoundtrip(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := newTestSessionService(t, repo)

	if !svc.Login(context.Background(), "employee@company.com", testPassword, domain.RoleEmployee) {
		t.Fatalf("login failed")
	}

	// A fresh service over the same store stands in for a restart.
	restarted := newTestSessionService(t, repo)
	restarted.Initialize(context.Background())

	current := restarted.Current()
	if current == nil || current.Email != "employee@company.com" {
		t.Fatalf("session did not survive restart: %+v", current)
	}

	// Logout on the restarted service erases the persisted copy too.
	restarted.Logout(context.Background())
	again := newTestSessionService(t, repo)
	again.Initialize(context.Background())
	if again.Current() != nil {
		t.Fatalf("logged-out session resurrected after restart")
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := newTestSessionService(t, repo)

	if !svc.Login(context.Background(), "employee@company.com", testPassword, domain.RoleEmployee) {
		t.Fatalf("login failed")
	}

	svc.Logout(context.Background())
	if svc.Current() != nil {
		t.Fatalf("logout did not clear the slot")
	}
	if repo.stored != nil {
		t.Fatalf("logout did not erase the persisted session")
	}

	// Logging out again must behave identically.
	svc.Logout(context.Background())
	if svc.Current() != nil {
		t.Fatalf("second logout changed the slot")
	}
	if repo.clears != 2 {
		t.Fatalf("expected 2 clear calls, got %d", repo.clears)
	}
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	svc := newTestSessionService(t, &stubSessionRepo{})
	if !svc.Login(context.Background(), "employee@company.com", testPassword, domain.RoleEmployee) {
		t.Fatalf("login failed")
	}

	first := svc.Current()
	first.Name = "tampered"

	if second := svc.Current(); second.Name != "John Smith" {
		t.Fatalf("Current must return a copy, got %q", second.Name)
	}
}
