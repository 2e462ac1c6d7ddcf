package cache

import (
	"context"
	"fmt"
	"portal_electro/internal/config"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Redis bundles the client and the lock client built on it.
type Redis struct {
	Client *redis.Client
	Locker *redislock.Client
}

// ConnectRedis connects and pings once. The service runs without redis when this fails,
// so there is no retry loop here.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 50,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", cfg.Addr, err)
	}
	return &Redis{Client: client, Locker: redislock.New(client)}, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
