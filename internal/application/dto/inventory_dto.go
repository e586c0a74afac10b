package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body de POST /api/inventory.
type CreateInventoryItemRequest struct {
	WarehouseID string           `json:"warehouseId" validate:"required"`
	ProductName string           `json:"productName" validate:"required,max=200"`
	SKU         string           `json:"sku" validate:"required,max=100"`
	Quantity    *int             `json:"quantity" validate:"required,min=0,max=2147483647"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required,max=100"`
}

// UpdateQuantityRequest body de PUT /api/inventory/:id.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=2147483647"`
}

// UpdatePriceRequest body de PATCH /api/inventory/:id/price.
type UpdatePriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// QuantityUpdate una entrada de la actualización masiva.
type QuantityUpdate struct {
	ID       string `json:"id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,min=0,max=2147483647"`
}

// BulkUpdateQuantitiesRequest body de PATCH /api/inventory/update-quantities.
type BulkUpdateQuantitiesRequest struct {
	Updates []QuantityUpdate `json:"updates" validate:"required,min=1,dive"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	ShopID      string          `json:"shopId"`
	WarehouseID string          `json:"warehouseId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PriceUpdatedResponse respuesta de PATCH /api/inventory/:id/price.
type PriceUpdatedResponse struct {
	Message     string                `json:"message"`
	UpdatedItem InventoryItemResponse `json:"updatedItem"`
}

// BulkUpdateResponse solo incluye los ítems que realmente se actualizaron.
type BulkUpdateResponse struct {
	Message      string                  `json:"message"`
	UpdatedItems []InventoryItemResponse `json:"updatedItems"`
}
