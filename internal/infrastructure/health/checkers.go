package health

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/goutelas/content-api/internal/core/ports"
	"github.com/goutelas/content-api/internal/infrastructure/wordpress"
)

// wordpressHealthChecker probes the content source with a minimal request.
type wordpressHealthChecker struct{ client *wordpress.Client }

func (w *wordpressHealthChecker) Name() string                    { return "wordpress" }
func (w *wordpressHealthChecker) Check(ctx context.Context) error { return w.client.Ping(ctx) }

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewWordPressHealthChecker creates a health checker for the content source.
func NewWordPressHealthChecker(client *wordpress.Client) ports.HealthChecker {
	return &wordpressHealthChecker{client: client}
}

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}
