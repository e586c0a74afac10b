// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en los tests de casos de uso y HTTP.
package memory

import (
	"sync"

	"github.com/jhoicas/stockmate-api/internal/domain/entity"
)

// Store guarda tiendas, bodegas e ítems detrás de un único RWMutex.
// Las lecturas devuelven copias: mutar una entidad no la persiste hasta llamar Update.
type Store struct {
	mu sync.RWMutex

	shops      map[string]*entity.Shop
	shopOrder  []string
	warehouses map[string]*entity.Warehouse
	whOrder    []string
	items      map[string]*entity.InventoryItem
	itemOrder  []string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		shops:      make(map[string]*entity.Shop),
		warehouses: make(map[string]*entity.Warehouse),
		items:      make(map[string]*entity.InventoryItem),
	}
}

// Shops devuelve el repositorio de tiendas sobre este almacén.
func (s *Store) Shops() *ShopRepo { return &ShopRepo{s: s} }

// Warehouses devuelve el repositorio de bodegas sobre este almacén.
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{s: s} }

// InventoryItems devuelve el repositorio de ítems sobre este almacén.
func (s *Store) InventoryItems() *InventoryItemRepo { return &InventoryItemRepo{s: s} }

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
