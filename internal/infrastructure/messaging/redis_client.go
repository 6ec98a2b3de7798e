package messaging

import (
	"context"
	"fmt"

	"oficina_xpto/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and pings it. It returns nil when no
// address is configured.
func NewRedisClient(ctx context.Context, conf config.Redis) (*redis.Client, error) {
	if conf.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
