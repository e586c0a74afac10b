package entity

import (
	"time"

	"github.com/jhoicas/stockmate-api/internal/domain"
)

// Warehouse representa una bodega de una tienda. ShopID no cambia después de creada.
type Warehouse struct {
	ID        string
	ShopID    string
	Name      string
	Location  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetCapacity aplica la capacidad, entre 0 y MaxQuantity.
func (w *Warehouse) SetCapacity(capacity int) error {
	if capacity < 0 || capacity > MaxQuantity {
		return domain.ErrInvalidInput
	}
	w.Capacity = capacity
	return nil
}
