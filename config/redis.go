package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/arfind/arfind_admin/logger"
)

// ConnectRedis connects to the session Redis. It returns nil when Redis is
// not reachable; callers fall back to in-process sessions.
func ConnectRedis(cfg RedisConfig, log *logger.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis connection failed")
		client.Close()
		return nil
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return client
}
