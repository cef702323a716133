package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/core/domain"
)

type stubSessionService struct {
	current *domain.Identity
	pending bool
	loginFn func(ctx context.Context, email, password string, role domain.Role) bool
	logouts int
}

func (s *stubSessionService) Initialize(_ context.Context) {}

func (s *stubSessionService) Login(ctx context.Context, email, password string, role domain.Role) bool {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubSessionService) Logout(_ context.Context) {
	s.logouts++
	s.current = nil
}

func (s *stubSessionService) Current() *domain.Identity {
	return s.current
}

func (s *stubSessionService) Pending() bool {
	return s.pending
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	identity := &domain.Identity{
		ID:    "1",
		Email: "employee@company.com",
		Name:  "John Smith",
		Role:  domain.RoleEmployee,
	}
	stub := &stubSessionService{
		loginFn: func(_ context.Context, email, password string, role domain.Role) bool {
			if email != "employee@company.com" || password != "password" || role != domain.RoleEmployee {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return true
		},
	}
	stub.current = identity
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"email":"employee@company.com","password":"password","role":"employee"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect_to"] != "/dashboard/employee" {
		t.Fatalf("unexpected redirect_to: %v", resp["redirect_to"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "employee@company.com" {
		t.Fatalf("unexpected user: %v", resp["user"])
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) bool { return false },
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(t, `{"email":"employee@company.com","password":"wrong","role":"employee"}`)
	err := handler.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	// A single message regardless of which check failed.
	if he.Message != "invalid credentials" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthHandler_Login_WhilePending(t *testing.T) {
	stub := &stubSessionService{
		pending: true,
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) bool {
			t.Fatalf("login must not be attempted while another is in flight")
			return false
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthContext(t, `{"email":"employee@company.com","password":"password","role":"employee"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrLoginInProgress) {
		t.Fatalf("expected ErrLoginInProgress, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) bool { return true },
	}
	handler := NewAuthHandler(stub)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password","role":"employee"}`},
		{"bad email", `{"email":"nope","password":"password","role":"employee"}`},
		{"unknown role", `{"email":"a@b.com","password":"password","role":"root"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(t, tc.body)
			err := handler.Login(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubSessionService{
		current: &domain.Identity{Email: "hr@company.com", Role: domain.RoleHR},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	// Logging out again is still a 204.
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec2)
	if err := handler.Logout(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec2.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on repeat logout, got %d", rec2.Code)
	}
	if stub.logouts != 2 {
		t.Fatalf("expected 2 logout calls, got %d", stub.logouts)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	stub := &stubSessionService{
		current: &domain.Identity{Email: "admin@company.com", Role: domain.RoleAdmin},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/session", nil), rec)

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != true {
		t.Fatalf("expected authenticated=true, got %v", resp["authenticated"])
	}

	// Logged out: no user key at all.
	stub.current = nil
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/session", nil), rec2)
	if err := handler.Session(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp2 map[string]any
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp2["authenticated"] != false {
		t.Fatalf("expected authenticated=false, got %v", resp2["authenticated"])
	}
	if _, present := resp2["user"]; present {
		t.Fatalf("user should be omitted when logged out")
	}
}
