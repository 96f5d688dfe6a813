package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsletter-api/internal/config"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	keyPrefix = "newsletter:"
)

// Cache guarda leituras do Mailchimp por um tempo limitado
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}

// New cria o cache conforme CACHE_DRIVER
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemoryCache(), nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("cache: failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}

		logrus.WithField("address", cfg.RedisAddr).Info("cache: redis connected")
		return NewRedisCache(client), nil
	default:
		return nil, fmt.Errorf("cache: unknown driver %q", cfg.Driver)
	}
}

// Fetch lê a chave do cache e, na ausência, chama load e grava o resultado.
// Falhas do cache só são logadas; ttl <= 0 desliga o cache.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if c == nil || ttl <= 0 {
		return load(ctx)
	}

	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: read failed, loading from source")
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: write failed")
	}

	return value, nil
}
