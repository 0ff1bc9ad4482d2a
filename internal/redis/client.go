// Package redis wraps the go-redis client so repositories depend on a small
// interface that miniredis-backed tests can satisfy.
package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	MaxRetries   int
	PingOnCreate bool
}

// NewClient creates a Redis client for a single instance. The address may be
// given as host:port or as a redis:// URL.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	var redisOpts *redis.Options
	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
		}
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{
			Addr:     endpoint,
			Password: opts.Password,
			DB:       opts.DB,
		}
	}

	redisOpts.PoolSize = opts.PoolSize
	redisOpts.DialTimeout = opts.DialTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.MaxRetries = opts.MaxRetries

	client := redis.NewClient(redisOpts)

	if opts.PingOnCreate {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
		}
	}

	return client, nil
}
