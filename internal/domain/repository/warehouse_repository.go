package repository

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Toda lectura y escritura se filtra por shopID.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByIDAndShop(ctx context.Context, id, shopID string) (*entity.Warehouse, error)
	ListByShop(ctx context.Context, shopID string) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	// DeleteByIDAndShop devuelve false si no había una bodega con ese id para la tienda.
	DeleteByIDAndShop(ctx context.Context, id, shopID string) (bool, error)
}
