// Package redis implementa el límite de reenvíos de OTP sobre Redis, compartido entre instancias.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/stockmate-api/internal/application/ports"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/pkg/config"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "stockmate:rate_limit:"

var _ ports.RateLimiter = (*RateLimiter)(nil)

type cmdable interface {
	Incr(context.Context, string) *goredis.IntCmd
	Expire(context.Context, string, time.Duration) *goredis.BoolCmd
}

// NewClient abre la conexión y verifica que Redis responde.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis: REDIS_ADDR es requerido")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RateLimiter ventana fija por clave: INCR y EXPIRE en el primer intento de la ventana.
type RateLimiter struct {
	store  cmdable
	limit  int64
	window time.Duration
}

// NewRateLimiter construye el limitador. limit <= 0 desactiva el límite.
func NewRateLimiter(client *goredis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{store: client, limit: int64(limit), window: window}
}

// Allow registra un intento y devuelve false si la clave superó el límite de la ventana.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}
	k := keyPrefix + key
	count, err := l.store.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", errors.Join(domain.ErrStorage, err))
	}
	if count == 1 {
		if err := l.store.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", errors.Join(domain.ErrStorage, err))
		}
	}
	return count <= l.limit, nil
}
