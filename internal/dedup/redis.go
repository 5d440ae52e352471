package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "zero:dedup:"

// RedisStore backs claims with Redis SET NX, so dedup holds across
// replicas of the service.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Claim implements Store.
func (s *RedisStore) Claim(ctx context.Context, key string, payload []byte, ttl time.Duration) ([]byte, bool, error) {
	full := keyPrefix + key

	// Two attempts cover the window where a claim expires between the
	// failed SET NX and the GET.
	for attempt := 0; attempt < 2; attempt++ {
		stored, err := s.client.SetNX(ctx, full, payload, ttl).Result()
		if err != nil {
			return nil, false, fmt.Errorf("dedup claim failed: %w", err)
		}
		if stored {
			return nil, false, nil
		}

		existing, err := s.client.Get(ctx, full).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("dedup read failed: %w", err)
		}
		return existing, true, nil
	}

	// The key kept vanishing; treat the last attempt as a fresh claim.
	return nil, false, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("dedup save failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
