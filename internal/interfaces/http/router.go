package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmate-api/internal/application/auth"
	"github.com/jhoicas/stockmate-api/internal/application/usecase"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryUseCase
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	requireShop := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	api := app.Group("/api")

	// Cuenta de la tienda (público salvo el perfil)
	shop := api.Group("/shop")
	shopHandler := NewShopHandler(deps.AuthUC, log.Named("shop"))
	shop.Post("/register", shopHandler.Register)
	shop.Post("/verify-otp", shopHandler.VerifyOTP)
	shop.Post("/resend-otp", shopHandler.ResendOTP)
	shop.Post("/login", shopHandler.Login)
	shop.Post("/forgot-password", shopHandler.ForgotPassword)
	shop.Post("/reset-password/:token", shopHandler.ResetPassword)
	shop.Get("/profile", requireShop, shopHandler.Profile)

	// Warehouses (protegido)
	warehouses := api.Group("/warehouse", requireShop)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, log.Named("warehouse"))
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventory (protegido). update-quantities va antes de /:id.
	inventory := api.Group("/inventory", requireShop)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, log.Named("inventory"))
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Patch("/update-quantities", inventoryHandler.BulkUpdateQuantities)
	inventory.Put("/:id", inventoryHandler.UpdateQuantity)
	inventory.Patch("/:id/price", inventoryHandler.UpdatePrice)
	inventory.Delete("/:id", inventoryHandler.Delete)
}
