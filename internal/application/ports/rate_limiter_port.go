package ports

import "context"

// RateLimiter cuenta intentos por clave dentro de una ventana fija.
type RateLimiter interface {
	// Allow registra un intento para key y devuelve false si se superó el límite.
	Allow(ctx context.Context, key string) (bool, error)
}
