package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stockmate-api/internal/application/ports"
)

var _ ports.RateLimiter = (*RateLimiter)(nil)

// RateLimiter ventana fija por clave, local al proceso.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string]bucket
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter permite limit intentos por clave cada window. now puede ser nil.
func NewRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{limit: limit, window: window, now: now, buckets: make(map[string]bucket)}
}

// Allow registra un intento y devuelve false si la clave superó el límite en la ventana actual.
func (l *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = bucket{resetAt: now.Add(l.window)}
	}
	b.count++
	l.buckets[key] = b
	return b.count <= l.limit, nil
}
