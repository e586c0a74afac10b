package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas, siempre acotados a la tienda del token.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	now  func() time.Time
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, now: time.Now}
}

// Create crea una nueva bodega de la tienda.
func (uc *WarehouseUseCase) Create(ctx context.Context, shopID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Capacity == nil {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		Name:      name,
		Location:  strings.TrimSpace(in.Location),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := warehouse.SetCapacity(*in.Capacity); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista todas las bodegas de la tienda.
func (uc *WarehouseUseCase) List(ctx context.Context, shopID string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Update aplica solo los campos enviados. ErrNotFound si la bodega no existe o es de otra tienda.
func (uc *WarehouseUseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByIDAndShop(ctx, id, shopID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = name
	}
	if in.Location != nil {
		warehouse.Location = strings.TrimSpace(*in.Location)
	}
	if in.Capacity != nil {
		if err := warehouse.SetCapacity(*in.Capacity); err != nil {
			return nil, err
		}
	}
	warehouse.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete elimina la bodega. ErrNotFound si no existe o es de otra tienda.
func (uc *WarehouseUseCase) Delete(ctx context.Context, shopID, id string) error {
	deleted, err := uc.repo.DeleteByIDAndShop(ctx, id, shopID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		ShopID:    w.ShopID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
