package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyTpl = "session:%s"

// RedisStore keeps one hash per session. Every write refreshes the
// session TTL, so a live session slides its own expiry forward.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		redis: client,
		ttl:   ttl,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, sid, key string) (string, error) {
	value, err := s.redis.HGet(ctx, fmt.Sprintf(redisKeyTpl, sid), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis error: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	rkey := fmt.Sprintf(redisKeyTpl, sid)
	if err := s.redis.HSet(ctx, rkey, key, value).Err(); err != nil {
		return fmt.Errorf("failed to set session value: %w", err)
	}
	if err := s.redis.Expire(ctx, rkey, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh session ttl: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid, key string) error {
	if err := s.redis.HDel(ctx, fmt.Sprintf(redisKeyTpl, sid), key).Err(); err != nil {
		return fmt.Errorf("failed to delete session value: %w", err)
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	if err := s.redis.Del(ctx, fmt.Sprintf(redisKeyTpl, sid)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
