package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InventoryUseCase casos de uso de ítems de inventario, acotados a la tienda del token.
type InventoryUseCase struct {
	items      repository.InventoryItemRepository
	warehouses repository.WarehouseRepository
	now        func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(items repository.InventoryItemRepository, warehouses repository.WarehouseRepository) *InventoryUseCase {
	return &InventoryUseCase{items: items, warehouses: warehouses, now: time.Now}
}

// Create agrega un ítem a una bodega de la tienda.
// ErrForbidden si la bodega no existe o pertenece a otra tienda; en ese caso no se crea nada.
func (uc *InventoryUseCase) Create(ctx context.Context, shopID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	productName := strings.TrimSpace(in.ProductName)
	sku := cases.Upper(language.Und).String(strings.TrimSpace(in.SKU))
	if productName == "" || sku == "" || in.Quantity == nil || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouses.GetByIDAndShop(ctx, in.WarehouseID, shopID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		ShopID:      shopID,
		WarehouseID: warehouse.ID,
		ProductName: productName,
		SKU:         sku,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.SetQuantity(*in.Quantity); err != nil {
		return nil, err
	}
	if err := item.SetPrice(*in.Price); err != nil {
		return nil, err
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// List lista todos los ítems de la tienda.
func (uc *InventoryUseCase) List(ctx context.Context, shopID string) ([]dto.InventoryItemResponse, error) {
	list, err := uc.items.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toInventoryItemResponse(it))
	}
	return out, nil
}

// UpdateQuantity sobrescribe la cantidad. ErrInvalidInput si es negativa; ErrNotFound si el ítem no es de la tienda.
func (uc *InventoryUseCase) UpdateQuantity(ctx context.Context, shopID, id string, quantity int) (*dto.InventoryItemResponse, error) {
	if quantity < 0 || quantity > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.updateQuantity(ctx, shopID, id, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(item), nil
}

// UpdatePrice sobrescribe el precio. ErrInvalidInput si falta o es negativo; ErrNotFound si el ítem no es de la tienda.
func (uc *InventoryUseCase) UpdatePrice(ctx context.Context, shopID, id string, price *decimal.Decimal) (*dto.InventoryItemResponse, error) {
	if price == nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByIDAndShop(ctx, id, shopID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := item.SetPrice(*price); err != nil {
		return nil, err
	}
	item.UpdatedAt = uc.now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina el ítem. ErrNotFound si no existe o es de otra tienda.
func (uc *InventoryUseCase) Delete(ctx context.Context, shopID, id string) error {
	deleted, err := uc.items.DeleteByIDAndShop(ctx, id, shopID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// bulkConcurrency tope de actualizaciones simultáneas por llamada.
const bulkConcurrency = 8

// BulkUpdateQuantities aplica cada actualización de forma independiente y concurrente.
//
// Política: los IDs inexistentes o de otra tienda se omiten sin error y la respuesta contiene
// solo los ítems actualizados, en el orden de entrada. Si un ID se repite, cuenta solo su última
// entrada. Un error del almacenamiento aborta la llamada; las actualizaciones ya aplicadas se
// quedan (no es una transacción).
func (uc *InventoryUseCase) BulkUpdateQuantities(ctx context.Context, shopID string, updates []dto.QuantityUpdate) ([]dto.InventoryItemResponse, error) {
	if len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	last := make(map[string]int, len(updates))
	for i, u := range updates {
		if strings.TrimSpace(u.ID) == "" || u.Quantity == nil || *u.Quantity < 0 || *u.Quantity > entity.MaxQuantity {
			return nil, domain.ErrInvalidInput
		}
		last[u.ID] = i
	}

	results := make([]*entity.InventoryItem, len(updates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for i, u := range updates {
		if last[u.ID] != i {
			continue
		}
		g.Go(func() error {
			item, err := uc.updateQuantity(gctx, shopID, u.ID, *u.Quantity)
			if err != nil {
				return err
			}
			results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]dto.InventoryItemResponse, 0, len(last))
	for _, item := range results {
		if item != nil {
			out = append(out, *toInventoryItemResponse(item))
		}
	}
	return out, nil
}

// updateQuantity devuelve (nil, nil) si el ítem no existe, no es de la tienda o desapareció antes de guardar.
func (uc *InventoryUseCase) updateQuantity(ctx context.Context, shopID, id string, quantity int) (*entity.InventoryItem, error) {
	item, err := uc.items.GetByIDAndShop(ctx, id, shopID)
	if err != nil || item == nil {
		return nil, err
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	item.UpdatedAt = uc.now()
	if err := uc.items.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil // eliminado entre la lectura y la escritura
		}
		return nil, err
	}
	return item, nil
}

func toInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:          i.ID,
		ShopID:      i.ShopID,
		WarehouseID: i.WarehouseID,
		ProductName: i.ProductName,
		SKU:         i.SKU,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Category:    i.Category,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
