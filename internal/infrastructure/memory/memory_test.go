package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/memory"
)

func TestShopRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Shops()

	require.NoError(t, repo.Create(ctx, &entity.Shop{ID: "1", Email: "a@b.co"}))
	err := repo.Create(ctx, &entity.Shop{ID: "2", Email: "a@b.co"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestShopRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Shops()
	shop := &entity.Shop{ID: "1", Email: "a@b.co"}
	shop.SetOTP("123456", time.Now().Add(time.Minute))
	require.NoError(t, repo.Create(ctx, shop))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	got.ClearOTP()
	got.IsVerified = true

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.False(t, again.IsVerified, "sin Update el cambio no se persiste")
	require.NotNil(t, again.OTP)
	assert.Equal(t, "123456", *again.OTP)
}

func TestWarehouseRepo_FiltraPorTienda(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Warehouses()
	require.NoError(t, repo.Create(ctx, &entity.Warehouse{ID: "w1", ShopID: "A"}))
	require.NoError(t, repo.Create(ctx, &entity.Warehouse{ID: "w2", ShopID: "B"}))

	got, err := repo.GetByIDAndShop(ctx, "w2", "A")
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListByShop(ctx, "A")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "w1", list[0].ID)

	deleted, err := repo.DeleteByIDAndShop(ctx, "w2", "A")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteByIDAndShop(ctx, "w2", "B")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRateLimiter_VentanaFija(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := memory.NewRateLimiter(2, 10*time.Minute, func() time.Time { return now })
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "intento %d", i+1)
	}

	ok, _ := l.Allow(ctx, "otra")
	assert.True(t, ok, "cada clave tiene su propio contador")

	now = now.Add(10 * time.Minute)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok, "la ventana se reinicia")
}
