package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/postgres"
)

const (
	shopA       = "0b6b2a0e-6f53-4c5e-9d2b-1f7a3c9e8d41"
	shopB       = "7c1d9e55-2a4b-4f0e-8b3a-5d6e7f809a12"
	warehouseID = "3f2e1d0c-4b5a-4968-8776-a5b4c3d2e1f0"
	itemID      = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func testShop() *entity.Shop {
	return &entity.Shop{
		ID:           shopA,
		Name:         "Ferretería Sol",
		Email:        "sol@tienda.co",
		PasswordHash: "$2a$10$hash",
		Phone:        "300",
		Address:      "Calle 1",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func shopArgs(s *entity.Shop) []any {
	return []any{
		s.ID, s.Name, s.Email, s.PasswordHash, s.Phone, s.Address, s.IsVerified,
		s.OTP, s.OTPExpiresAt, s.ResetTokenHash, s.ResetTokenExpiresAt, s.CreatedAt, s.UpdatedAt,
	}
}

var shopCols = []string{
	"id", "name", "email", "password_hash", "phone", "address", "is_verified",
	"otp", "otp_expires_at", "reset_token_hash", "reset_token_expires_at", "created_at", "updated_at",
}

func TestShopRepo_Create_EmailDuplicado(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewShopRepository(mock)
	shop := testShop()

	mock.ExpectExec(`INSERT INTO shops`).
		WithArgs(shopArgs(shop)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "shops_email_lower_key"})

	err := repo.Create(context.Background(), shop)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestShopRepo_Create_FalloDeConexion(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewShopRepository(mock)
	shop := testShop()

	mock.ExpectExec(`INSERT INTO shops`).
		WithArgs(shopArgs(shop)...).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), shop)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestShopRepo_GetByEmail_SinDistinguirMayusculas(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewShopRepository(mock)

	mock.ExpectQuery(`FROM shops WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("SOL@Tienda.co").
		WillReturnRows(pgxmock.NewRows(shopCols).AddRow(
			shopA, "Ferretería Sol", "sol@tienda.co", "$2a$10$hash", "300", "Calle 1", true,
			nil, nil, nil, nil, fixedTime, fixedTime,
		))

	shop, err := repo.GetByEmail(context.Background(), "SOL@Tienda.co")
	require.NoError(t, err)
	require.NotNil(t, shop)
	assert.Equal(t, shopA, shop.ID)
	assert.True(t, shop.IsVerified)
	assert.Nil(t, shop.OTP)
}

func TestShopRepo_GetByEmail_Inexistente(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewShopRepository(mock)

	mock.ExpectQuery(`FROM shops WHERE lower\(email\)`).
		WithArgs("nadie@tienda.co").
		WillReturnError(pgx.ErrNoRows)

	shop, err := repo.GetByEmail(context.Background(), "nadie@tienda.co")
	assert.NoError(t, err)
	assert.Nil(t, shop)
}

func TestShopRepo_GetByID_IDInvalidoNoConsulta(t *testing.T) {
	repo := postgres.NewShopRepository(newMock(t))

	shop, err := repo.GetByID(context.Background(), "no-es-uuid")
	assert.NoError(t, err)
	assert.Nil(t, shop)
}

func TestShopRepo_Update_TiendaInexistente(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewShopRepository(mock)
	shop := testShop()

	mock.ExpectExec(`UPDATE shops SET`).
		WithArgs(shop.ID, shop.Name, shop.Email, shop.PasswordHash, shop.Phone, shop.Address,
			shop.IsVerified, shop.OTP, shop.OTPExpiresAt, shop.ResetTokenHash,
			shop.ResetTokenExpiresAt, shop.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), shop), domain.ErrShopNotFound)
}

var warehouseCols = []string{"id", "shop_id", "name", "location", "capacity", "created_at", "updated_at"}

func TestWarehouseRepo_GetByIDAndShop_OtraTienda(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewWarehouseRepository(mock)

	mock.ExpectQuery(`FROM warehouses WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(warehouseID, shopB).
		WillReturnError(pgx.ErrNoRows)

	w, err := repo.GetByIDAndShop(context.Background(), warehouseID, shopB)
	assert.NoError(t, err)
	assert.Nil(t, w)
}

func TestWarehouseRepo_ListByShop(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewWarehouseRepository(mock)

	mock.ExpectQuery(`FROM warehouses WHERE shop_id = \$1 ORDER BY created_at, id`).
		WithArgs(shopA).
		WillReturnRows(pgxmock.NewRows(warehouseCols).
			AddRow(warehouseID, shopA, "Central", "Cali", 100, fixedTime, fixedTime).
			AddRow("5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a", shopA, "Norte", "Bogotá", 0, fixedTime, fixedTime))

	list, err := repo.ListByShop(context.Background(), shopA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Central", list[0].Name)
	assert.Equal(t, 100, list[0].Capacity)
	assert.Equal(t, shopA, list[1].ShopID)
}

func TestWarehouseRepo_Update_OtraTienda(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewWarehouseRepository(mock)
	w := &entity.Warehouse{ID: warehouseID, ShopID: shopB, Name: "Robada", Location: "Cali", Capacity: 1, UpdatedAt: fixedTime}

	mock.ExpectExec(`UPDATE warehouses SET .* WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(w.ID, w.ShopID, w.Name, w.Location, w.Capacity, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), w), domain.ErrNotFound)
}

func TestWarehouseRepo_DeleteByIDAndShop(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewWarehouseRepository(mock)

	mock.ExpectExec(`DELETE FROM warehouses WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(warehouseID, shopB).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM warehouses WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(warehouseID, shopA).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.DeleteByIDAndShop(context.Background(), warehouseID, shopB)
	require.NoError(t, err)
	assert.False(t, deleted)

	// solo se borra la bodega; ningún DELETE adicional sobre inventory_items
	deleted, err = repo.DeleteByIDAndShop(context.Background(), warehouseID, shopA)
	require.NoError(t, err)
	assert.True(t, deleted)
}

var itemCols = []string{"id", "shop_id", "warehouse_id", "product_name", "sku", "quantity", "price", "category", "created_at", "updated_at"}

func TestInventoryItemRepo_GetByIDAndShop(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInventoryItemRepository(mock)
	price := decimal.RequireFromString("12.50")

	mock.ExpectQuery(`FROM inventory_items WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(itemID, shopA).
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(itemID, shopA, warehouseID, "Tornillo", "TOR-1", 10, price, "ferretería", fixedTime, fixedTime))
	mock.ExpectQuery(`FROM inventory_items WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(itemID, shopB).
		WillReturnError(pgx.ErrNoRows)

	it, err := repo.GetByIDAndShop(context.Background(), itemID, shopA)
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, "TOR-1", it.SKU)
	assert.Equal(t, 10, it.Quantity)
	assert.True(t, it.Price.Equal(price))

	it, err = repo.GetByIDAndShop(context.Background(), itemID, shopB)
	assert.NoError(t, err)
	assert.Nil(t, it)
}

func TestInventoryItemRepo_Update_OtraTienda(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInventoryItemRepository(mock)
	it := &entity.InventoryItem{ID: itemID, ShopID: shopB, Quantity: 5, Price: decimal.NewFromInt(3), UpdatedAt: fixedTime}

	mock.ExpectExec(`UPDATE inventory_items SET .* WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(it.ID, it.ShopID, it.Quantity, it.Price, it.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), it), domain.ErrNotFound)
}

func TestInventoryItemRepo_ListByShop_FalloDeConexion(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInventoryItemRepository(mock)

	mock.ExpectQuery(`FROM inventory_items WHERE shop_id = \$1`).
		WithArgs(shopA).
		WillReturnError(errors.New("connection reset"))

	list, err := repo.ListByShop(context.Background(), shopA)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Nil(t, list)
}

func TestInventoryItemRepo_DeleteByIDAndShop(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInventoryItemRepository(mock)

	mock.ExpectExec(`DELETE FROM inventory_items WHERE id = \$1 AND shop_id = \$2`).
		WithArgs(itemID, shopB).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.DeleteByIDAndShop(context.Background(), itemID, shopB)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteByIDAndShop(context.Background(), "nonexistent", shopA)
	require.NoError(t, err)
	assert.False(t, deleted)
}
