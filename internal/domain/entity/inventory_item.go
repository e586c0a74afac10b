package entity

import (
	"math"
	"time"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto almacenado en una bodega.
// ShopID se duplica desde la bodega para filtrar por dueño sin join; WarehouseID solo se valida al crear.
type InventoryItem struct {
	ID          string
	ShopID      string
	WarehouseID string
	ProductName string
	SKU         string // siempre en mayúsculas
	Quantity    int
	Price       decimal.Decimal
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MaxQuantity tope de cantidad y capacidad (columna INTEGER).
const MaxQuantity = math.MaxInt32

// Precio: NUMERIC(14,2).
const priceScale = 2

var maxPrice = decimal.New(1, 12)

// SetQuantity aplica la cantidad, entre 0 y MaxQuantity.
func (i *InventoryItem) SetQuantity(quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return domain.ErrInvalidInput
	}
	i.Quantity = quantity
	return nil
}

// SetPrice aplica el precio: no negativo, menor a 10^12 y con máximo dos decimales.
func (i *InventoryItem) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) || !price.Equal(price.Truncate(priceScale)) {
		return domain.ErrInvalidInput
	}
	i.Price = price
	return nil
}
