package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "marketplace-connector:result:"
	redisOpTimeout = 500 * time.Millisecond
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache делит кэш результатов между несколькими экземплярами сервиса.
// Ошибки Redis не пробрасываются: промах кэша всегда безопасен.
type RedisCache struct {
	logger *slog.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(logger *slog.Logger, opts RedisOptions) *RedisCache {
	return &RedisCache{
		logger: logger.With(slog.String("cache", "redis")),
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		ttl: opts.TTL,
	}
}

func (c *RedisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read from redis", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := c.client.Set(ctx, redisKeyPrefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write to redis", slog.String("key", key), slog.Any("error", err))
	}
}

// Start проверяет соединение при старте приложения.
func (c *RedisCache) Start(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
