package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/application/usecase"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/memory"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestWarehouseUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())

	created, err := uc.Create(ctx, "shop-a", dto.CreateWarehouseRequest{Name: " Central ", Location: "Bogotá", Capacity: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, "Central", created.Name)
	assert.Equal(t, "shop-a", created.ShopID)
	assert.NotEmpty(t, created.ID)

	updated, err := uc.Update(ctx, "shop-a", created.ID, dto.UpdateWarehouseRequest{Capacity: intPtr(250)})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Capacity)
	assert.Equal(t, "Central", updated.Name, "los campos no enviados se conservan")

	list, err := uc.List(ctx, "shop-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 250, list[0].Capacity)

	require.NoError(t, uc.Delete(ctx, "shop-a", created.ID))
	list, err = uc.List(ctx, "shop-a")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWarehouseUseCase_AisladoPorTienda(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())

	w, err := uc.Create(ctx, "shop-a", dto.CreateWarehouseRequest{Name: "A1", Location: "x", Capacity: intPtr(1)})
	require.NoError(t, err)

	list, err := uc.List(ctx, "shop-b")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = uc.Update(ctx, "shop-b", w.ID, dto.UpdateWarehouseRequest{Name: strPtr("robada")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, "shop-b", w.ID), domain.ErrNotFound)

	list, err = uc.List(ctx, "shop-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A1", list[0].Name)
}

func TestWarehouseUseCase_CapacidadNegativa(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())

	_, err := uc.Create(ctx, "shop-a", dto.CreateWarehouseRequest{Name: "A1", Capacity: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "shop-a", dto.CreateWarehouseRequest{Name: "   ", Capacity: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
