package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// AttendanceStore keeps the per-role "checked in since" record.
// Key format: ems:checkin:<role>, value {"time": "<RFC3339>"}.
type AttendanceStore struct {
	client *redis.Client
}

func NewAttendanceStore(client *redis.Client) *AttendanceStore {
	return &AttendanceStore{client: client}
}

// Get returns the check-in record for a role, or (nil, nil) when the
// role is not checked in. Unreadable records count as not checked in.
func (s *AttendanceStore) Get(ctx context.Context, role domain.Role) (*domain.CheckIn, error) {
	raw, err := s.client.Get(ctx, s.key(role)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get check-in: %w", err)
	}

	var record domain.CheckIn
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, nil
	}
	return &record, nil
}

func (s *AttendanceStore) Set(ctx context.Context, role domain.Role, record domain.CheckIn) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode check-in: %w", err)
	}
	if err := s.client.Set(ctx, s.key(role), raw, 0).Err(); err != nil {
		return fmt.Errorf("set check-in: %w", err)
	}
	return nil
}

func (s *AttendanceStore) Clear(ctx context.Context, role domain.Role) error {
	if err := s.client.Del(ctx, s.key(role)).Err(); err != nil {
		return fmt.Errorf("clear check-in: %w", err)
	}
	return nil
}

func (s *AttendanceStore) key(role domain.Role) string {
	return fmt.Sprintf("ems:checkin:%s", role)
}
