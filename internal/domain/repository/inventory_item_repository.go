package repository

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// Toda lectura y escritura se filtra por shopID.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByIDAndShop(ctx context.Context, id, shopID string) (*entity.InventoryItem, error)
	ListByShop(ctx context.Context, shopID string) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	DeleteByIDAndShop(ctx context.Context, id, shopID string) (bool, error)
}
