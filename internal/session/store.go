package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"estateadmin/console/internal/cache"
	"estateadmin/console/internal/models"
)

var ErrNotFound = errors.New("session: no persisted admin")

// Store persists the admin identity of one console session under one key.
type Store interface {
	Load(ctx context.Context, id string) (models.Admin, error)
	Save(ctx context.Context, id string, admin models.Admin) error
	Delete(ctx context.Context, id string) error
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	client redisKV
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redisKV, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: cache.Key("session", ""),
		ttl:    ttl,
	}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (models.Admin, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, fmt.Errorf("load session: %w", err)
	}

	var admin models.Admin
	if err := json.Unmarshal(raw, &admin); err != nil {
		return models.Admin{}, fmt.Errorf("decode session: %w", err)
	}
	return admin, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, admin models.Admin) error {
	raw, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
