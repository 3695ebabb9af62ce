package screen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"estateadmin/console/internal/cache"
)

var ErrNoSnapshot = errors.New("screen: no snapshot")

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type snapshot[T any] struct {
	Items   []T       `json:"items"`
	SavedAt time.Time `json:"savedAt"`
}

// Snapshots keeps the last collection a screen read, per console session, so
// local mutations survive the redirect that follows a write.
type Snapshots[T Identifiable] struct {
	client redisKV
	screen string
	ttl    time.Duration
}

func NewSnapshots[T Identifiable](client redisKV, screen string, ttl time.Duration) *Snapshots[T] {
	return &Snapshots[T]{client: client, screen: screen, ttl: ttl}
}

func (s *Snapshots[T]) key(sessionID string) string {
	return cache.Key("screen", s.screen, sessionID)
}

func (s *Snapshots[T]) Load(ctx context.Context, sessionID string) (*List[T], error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load %s snapshot: %w", s.screen, err)
	}

	var snap snapshot[T]
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", s.screen, err)
	}
	return Restore(snap.Items), nil
}

// Save stores a loaded list. Lists in any other state are not stored.
func (s *Snapshots[T]) Save(ctx context.Context, sessionID string, list *List[T]) error {
	if list.State() != Loaded {
		return s.Clear(ctx, sessionID)
	}
	raw, err := json.Marshal(snapshot[T]{Items: list.Items(), SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", s.screen, err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save %s snapshot: %w", s.screen, err)
	}
	return nil
}

func (s *Snapshots[T]) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear %s snapshot: %w", s.screen, err)
	}
	return nil
}
