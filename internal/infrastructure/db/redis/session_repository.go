package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// sessionKey is the single slot the persisted identity lives under.
// It shares the "ems:" namespace with the attendance keys; the fixed
// name cannot collide with "ems:checkin:<role>".
const sessionKey = "ems:user"

// SessionRepository persists the session slot as a JSON identity under
// a fixed key, mirroring the dashboard's durable local storage.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Load returns the persisted identity, (nil, nil) when no session is
// stored, or domain.ErrMalformedSession when the record is unreadable.
func (r *SessionRepository) Load(ctx context.Context) (*domain.Identity, error) {
	raw, err := r.client.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, domain.ErrMalformedSession
	}
	return &identity, nil
}

// Save overwrites the session slot. The record has no TTL: it survives
// until an explicit logout.
func (r *SessionRepository) Save(ctx context.Context, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent key is fine.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
