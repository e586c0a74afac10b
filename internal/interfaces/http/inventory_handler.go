package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/application/usecase"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

// InventoryHandler maneja los ítems de inventario (protegido).
type InventoryHandler struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Agregar ítem a una bodega propia
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetShopID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ítems de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetShopID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Actualizar cantidad
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del ítem"
// @Param        body  body  dto.UpdateQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), GetShopID(c), c.Params("id"), *in.Quantity)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdatePrice godoc
// @Summary      Actualizar precio
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del ítem"
// @Param        body  body  dto.UpdatePriceRequest  true  "price"
// @Success      200   {object}  dto.PriceUpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/price [patch]
func (h *InventoryHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdatePrice(c.UserContext(), GetShopID(c), c.Params("id"), in.Price)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.PriceUpdatedResponse{Message: "precio actualizado", UpdatedItem: *out})
}

// BulkUpdateQuantities godoc
// @Summary      Actualizar cantidades en lote
// @Description  Los IDs inexistentes o de otra tienda se omiten; la respuesta trae solo los ítems actualizados.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateQuantitiesRequest  true  "updates"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/update-quantities [patch]
func (h *InventoryHandler) BulkUpdateQuantities(c *fiber.Ctx) error {
	var in dto.BulkUpdateQuantitiesRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.BulkUpdateQuantities(c.UserContext(), GetShopID(c), in.Updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.BulkUpdateResponse{Message: "cantidades actualizadas", UpdatedItems: out})
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetShopID(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}
