package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
// Toda consulta filtra por shop_id.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, shop_id, name, location, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, w.ID, w.ShopID, w.Name, w.Location, w.Capacity, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return storageErr("insert warehouse", err)
	}
	return nil
}

// GetByIDAndShop obtiene la bodega solo si pertenece a la tienda.
func (r *WarehouseRepo) GetByIDAndShop(ctx context.Context, id, shopID string) (*entity.Warehouse, error) {
	if !validID(id) || !validID(shopID) {
		return nil, nil
	}
	query := `
		SELECT id, shop_id, name, location, capacity, created_at, updated_at
		FROM warehouses WHERE id = $1 AND shop_id = $2`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id, shopID).Scan(
		&w.ID, &w.ShopID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get warehouse", err)
	}
	return &w, nil
}

// ListByShop lista las bodegas de la tienda en orden de creación.
func (r *WarehouseRepo) ListByShop(ctx context.Context, shopID string) ([]*entity.Warehouse, error) {
	if !validID(shopID) {
		return nil, nil
	}
	query := `
		SELECT id, shop_id, name, location, capacity, created_at, updated_at
		FROM warehouses WHERE shop_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, storageErr("list warehouses", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.ShopID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, storageErr("scan warehouse", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list warehouses", err)
	}
	return list, nil
}

// Update actualiza nombre, ubicación y capacidad. ErrNotFound si la bodega no es de la tienda.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, location = $4, capacity = $5, updated_at = $6
		WHERE id = $1 AND shop_id = $2`
	cmd, err := r.q.Exec(ctx, query, w.ID, w.ShopID, w.Name, w.Location, w.Capacity, w.UpdatedAt)
	if err != nil {
		return storageErr("update warehouse", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDAndShop elimina la bodega; devuelve false si no existía para esa tienda.
// Los ítems que apuntaban a la bodega se conservan.
func (r *WarehouseRepo) DeleteByIDAndShop(ctx context.Context, id, shopID string) (bool, error) {
	if !validID(id) || !validID(shopID) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1 AND shop_id = $2`, id, shopID)
	if err != nil {
		return false, storageErr("delete warehouse", err)
	}
	return cmd.RowsAffected() > 0, nil
}
