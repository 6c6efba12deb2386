package services

import (
	"context"
	"fmt"
	"time"

	"feedlooply-api/internal/config"
	"feedlooply-api/pkg/logging"

	"github.com/redis/go-redis/v9"
)

// RedisService rate-limits the lead-capture endpoints per email address.
// The limiter is optional infrastructure: Redis errors never block a
// request, they just disable limiting for that call.
type RedisService struct {
	client *redis.Client
	window time.Duration
}

// NewRedisService creates a new Redis service instance
func NewRedisService() (*RedisService, error) {
	opt, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisService{
		client: client,
		window: time.Duration(config.AppConfig.RateLimitMinutes) * time.Minute,
	}, nil
}

// Allow reports whether another request from this email is permitted within
// the rate-limit window. A nil receiver (limiter disabled) always allows.
func (r *RedisService) Allow(ctx context.Context, scope, email string) bool {
	if r == nil || r.client == nil {
		return true
	}

	key := fmt.Sprintf("lead_rate:%s:%s", scope, email)
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), r.window).Result()
	if err != nil {
		logging.Errorf("rate limit check failed for %s: %v", key, err)
		return true
	}
	return ok
}
