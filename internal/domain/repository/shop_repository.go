package repository

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain/entity"
)

// ShopRepository define el puerto de persistencia para Shop (DIP).
// Los métodos de lectura devuelven (nil, nil) si no existe el registro.
type ShopRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	GetByEmail(ctx context.Context, email string) (*entity.Shop, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}
