package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required,max=500"`
	Capacity *int   `json:"capacity" validate:"required,min=0,max=2147483647"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega; cada campo es opcional.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location *string `json:"location" validate:"omitempty,max=500"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=0,max=2147483647"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
