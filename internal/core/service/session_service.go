package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

const defaultLoginDelay = time.Second

// SessionService owns the process-wide session slot. The slot is
// mutated only by Login and Logout; Initialize populates it once at
// startup from the durable store.
//
// Two overlapping Login calls are not forbidden: each checks
// credentials independently and the last one to complete wins the
// slot. Callers are expected to refuse resubmission while Pending
// reports true.
type SessionService struct {
	mu      sync.Mutex
	current *domain.Identity
	pending bool

	repo       ports.SessionRepository
	directory  ports.DirectoryRepository
	sharedHash []byte // bcrypt hash of the single shared credential
	delay      time.Duration
	logger     zerolog.Logger
}

// NewSessionService builds a SessionService. delay models the remote
// credential check; values <= 0 fall back to the one-second default.
func NewSessionService(
	repo ports.SessionRepository,
	directory ports.DirectoryRepository,
	sharedHash []byte,
	delay time.Duration,
	logger zerolog.Logger,
) *SessionService {
	if delay <= 0 {
		delay = defaultLoginDelay
	}
	return &SessionService{
		repo:       repo,
		directory:  directory,
		sharedHash: sharedHash,
		delay:      delay,
		logger:     logger,
	}
}

// Initialize restores a persisted identity into the slot. It never
// fails the caller: load errors and malformed records mean logged out.
func (s *SessionService) Initialize(ctx context.Context) {
	identity, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding unreadable persisted session")
		identity = nil
	}
	if identity != nil && !identity.Role.Valid() {
		s.logger.Warn().Str("role", string(identity.Role)).Msg("discarding persisted session with unknown role")
		identity = nil
	}

	s.mu.Lock()
	s.current = identity
	s.pending = false
	s.mu.Unlock()

	if identity != nil {
		s.logger.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("session restored")
	}
}

// Login checks the supplied credentials against the directory and the
// shared credential value. It succeeds only when the email is known,
// the stored role equals claimedRole, and the password matches; which
// of the three failed is never revealed.
func (s *SessionService) Login(ctx context.Context, email, password string, claimedRole domain.Role) bool {
	s.setPending(true)
	defer s.setPending(false)

	// Fixed latency standing in for a remote identity-provider call.
	time.Sleep(s.delay)

	identity, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Str("email", email).Msg("login rejected")
		return false
	}
	if identity.Role != claimedRole {
		s.logger.Debug().Str("email", email).Msg("login rejected")
		return false
	}
	if bcrypt.CompareHashAndPassword(s.sharedHash, []byte(password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login rejected")
		return false
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	if err := s.repo.Save(ctx, identity); err != nil {
		// The in-memory session stands; only the reload survival is lost.
		s.logger.Warn().Err(err).Msg("failed to persist session")
	}

	s.logger.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("login succeeded")
	return true
}

// Logout clears the slot and erases the persisted copy. Calling it
// while already logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to erase persisted session")
	}
}

// Current returns a copy of the logged-in identity, or nil.
func (s *SessionService) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// Pending reports whether a login call is in flight.
func (s *SessionService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *SessionService) setPending(v bool) {
	s.mu.Lock()
	s.pending = v
	s.mu.Unlock()
}
