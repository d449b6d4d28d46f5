package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dnsintel:snapshot:"

// Redis backs the cache with a redis server so multiple processes share one
// hot layer. TTL enforcement is delegated to the server.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the server at addr. The connection is verified
// before the cache is handed out so a bad address fails at startup, not on
// the first lookup.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %q: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, domain string) ([]byte, error) {
	data, err := r.client.Get(ctx, keyPrefix+domain).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %q: %w", domain, err)
	}
	return data, nil
}

func (r *Redis) Set(ctx context.Context, domain string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+domain, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", domain, err)
	}
	return nil
}

// Close releases the client's connections.
func (r *Redis) Close() error {
	return r.client.Close()
}
