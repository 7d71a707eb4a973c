// Package redis holds the optional shared counter store used by the rate
// limiter. Every caller must cope with Client() returning nil.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	mu     sync.RWMutex
	client *redis.Client
)

// ErrNotConfigured is returned by Initialize when REDIS_URL is empty
var ErrNotConfigured = errors.New("redis: REDIS_URL not configured")

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://host:port/db or rediss:// for TLS
	Password string // overrides the password embedded in URL
}

// Client returns the shared client, nil when Redis is not in use
func Client() *redis.Client {
	mu.RLock()
	defer mu.RUnlock()
	return client
}

// Options converts Config into go-redis options
func Options(cfg Config) (*redis.Options, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if opts.TLSConfig != nil {
		opts.TLSConfig.MinVersion = tls.VersionTLS12
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	return opts, nil
}

// Initialize connects and pings Redis. On failure no client is installed and
// the rate limiter keeps its in-memory store.
func Initialize(ctx context.Context, cfg Config) error {
	opts, err := Options(cfg)
	if err != nil {
		return err
	}

	c := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis: connection failed: %w", err)
	}

	Use(c)
	return nil
}

// Use installs c as the shared client. Passing nil disables Redis.
func Use(c *redis.Client) {
	mu.Lock()
	defer mu.Unlock()
	client = c
}

// Close closes the Redis connection gracefully.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// HealthCheck returns nil when the shared client answers a ping
func HealthCheck(ctx context.Context) error {
	c := Client()
	if c == nil {
		return errors.New("redis: client not initialized")
	}
	return c.Ping(ctx).Err()
}
