package memory

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación en memoria de WarehouseRepository.
type WarehouseRepo struct {
	s *Store
}

// Create persiste una bodega.
func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *w
	r.s.warehouses[w.ID] = &c
	r.s.whOrder = append(r.s.whOrder, w.ID)
	return nil
}

// GetByIDAndShop obtiene la bodega solo si pertenece a shopID.
func (r *WarehouseRepo) GetByIDAndShop(_ context.Context, id, shopID string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.warehouses[id]
	if !ok || w.ShopID != shopID {
		return nil, nil
	}
	c := *w
	return &c, nil
}

// ListByShop lista las bodegas de la tienda en orden de creación.
func (r *WarehouseRepo) ListByShop(_ context.Context, shopID string) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Warehouse
	for _, id := range r.s.whOrder {
		if w := r.s.warehouses[id]; w.ShopID == shopID {
			c := *w
			list = append(list, &c)
		}
	}
	return list, nil
}

// Update actualiza nombre, ubicación y capacidad; el dueño no cambia.
func (r *WarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.warehouses[w.ID]
	if !ok || existing.ShopID != w.ShopID {
		return domain.ErrNotFound
	}
	existing.Name = w.Name
	existing.Location = w.Location
	existing.Capacity = w.Capacity
	existing.UpdatedAt = w.UpdatedAt
	return nil
}

// DeleteByIDAndShop elimina la bodega si pertenece a shopID.
func (r *WarehouseRepo) DeleteByIDAndShop(_ context.Context, id, shopID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.warehouses[id]
	if !ok || w.ShopID != shopID {
		return false, nil
	}
	delete(r.s.warehouses, id)
	r.s.whOrder = removeID(r.s.whOrder, id)
	return true, nil
}
