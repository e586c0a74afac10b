package memory

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación en memoria de InventoryItemRepository.
type InventoryItemRepo struct {
	s *Store
}

// Create persiste un ítem.
func (r *InventoryItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *item
	r.s.items[item.ID] = &c
	r.s.itemOrder = append(r.s.itemOrder, item.ID)
	return nil
}

// GetByIDAndShop obtiene el ítem solo si pertenece a shopID.
func (r *InventoryItemRepo) GetByIDAndShop(_ context.Context, id, shopID string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.items[id]
	if !ok || item.ShopID != shopID {
		return nil, nil
	}
	c := *item
	return &c, nil
}

// ListByShop lista los ítems de la tienda en orden de creación.
func (r *InventoryItemRepo) ListByShop(_ context.Context, shopID string) ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InventoryItem
	for _, id := range r.s.itemOrder {
		if item := r.s.items[id]; item.ShopID == shopID {
			c := *item
			list = append(list, &c)
		}
	}
	return list, nil
}

// Update reemplaza cantidad y precio (campos mutables del ítem).
func (r *InventoryItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.items[item.ID]
	if !ok || existing.ShopID != item.ShopID {
		return domain.ErrNotFound
	}
	existing.Quantity = item.Quantity
	existing.Price = item.Price
	existing.UpdatedAt = item.UpdatedAt
	return nil
}

// DeleteByIDAndShop elimina el ítem si pertenece a shopID.
func (r *InventoryItemRepo) DeleteByIDAndShop(_ context.Context, id, shopID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok || item.ShopID != shopID {
		return false, nil
	}
	delete(r.s.items, id)
	r.s.itemOrder = removeID(r.s.itemOrder, id)
	return true, nil
}
