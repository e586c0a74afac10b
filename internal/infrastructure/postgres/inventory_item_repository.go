package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, shop_id, warehouse_id, product_name, sku, quantity, price, category, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para ítems de inventario.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.ShopID, it.WarehouseID, it.ProductName, it.SKU, it.Quantity, it.Price, it.Category,
		it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert inventory item", err)
	}
	return nil
}

// GetByIDAndShop obtiene el ítem solo si pertenece a la tienda.
func (r *InventoryItemRepo) GetByIDAndShop(ctx context.Context, id, shopID string) (*entity.InventoryItem, error) {
	if !validID(id) || !validID(shopID) {
		return nil, nil
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND shop_id = $2`
	it, err := scanItem(r.q.QueryRow(ctx, query, id, shopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get inventory item", err)
	}
	return it, nil
}

// ListByShop lista los ítems de la tienda en orden de creación.
func (r *InventoryItemRepo) ListByShop(ctx context.Context, shopID string) ([]*entity.InventoryItem, error) {
	if !validID(shopID) {
		return nil, nil
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE shop_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, storageErr("list inventory items", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, storageErr("scan inventory item", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list inventory items", err)
	}
	return list, nil
}

// Update actualiza cantidad y precio. ErrNotFound si el ítem no es de la tienda.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET quantity = $3, price = $4, updated_at = $5
		WHERE id = $1 AND shop_id = $2`
	cmd, err := r.q.Exec(ctx, query, it.ID, it.ShopID, it.Quantity, it.Price, it.UpdatedAt)
	if err != nil {
		return storageErr("update inventory item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDAndShop elimina el ítem; devuelve false si no existía para esa tienda.
func (r *InventoryItemRepo) DeleteByIDAndShop(ctx context.Context, id, shopID string) (bool, error) {
	if !validID(id) || !validID(shopID) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1 AND shop_id = $2`, id, shopID)
	if err != nil {
		return false, storageErr("delete inventory item", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.ShopID, &it.WarehouseID, &it.ProductName, &it.SKU, &it.Quantity, &it.Price, &it.Category,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
