package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/stockmate-api/docs"
	"github.com/jhoicas/stockmate-api/internal/application/auth"
	"github.com/jhoicas/stockmate-api/internal/application/ports"
	"github.com/jhoicas/stockmate-api/internal/application/usecase"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/mail"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockmate-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/stockmate-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/stockmate-api/internal/interfaces/http"
	"github.com/jhoicas/stockmate-api/pkg/config"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

// @title StockMate API
// @version 1.0
// @description Backend multi-tienda de bodegas e inventario.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		shopRepo      repository.ShopRepository
		warehouseRepo repository.WarehouseRepository
		itemRepo      repository.InventoryItemRepository
	)
	switch cfg.DB.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		shopRepo, warehouseRepo, itemRepo = store.Shops(), store.Warehouses(), store.InventoryItems()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		shopRepo = postgres.NewShopRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		itemRepo = postgres.NewInventoryItemRepository(pool)
	}

	var notifier ports.Notifier
	if cfg.Mail.Enabled() {
		notifier = mail.NewSMTPNotifier(cfg.Mail, cfg.App.FrontendURL, log)
	} else {
		log.Warn().Msg("MAIL_HOST no configurado: los correos solo se registran en el log")
		notifier = mail.NewLogNotifier(log)
	}

	// Límites de reenvío y verificación de OTP: Redis si está configurado (compartido entre instancias), si no en memoria.
	var limiter, verifyLimiter ports.RateLimiter
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		limiter = infraredis.NewRateLimiter(rdb, cfg.Auth.OTPResendLimit, cfg.Auth.OTPResendWindow)
		verifyLimiter = infraredis.NewRateLimiter(rdb, cfg.Auth.OTPVerifyLimit, cfg.Auth.OTPResendWindow)
	} else {
		limiter = memory.NewRateLimiter(cfg.Auth.OTPResendLimit, cfg.Auth.OTPResendWindow, nil)
		verifyLimiter = memory.NewRateLimiter(cfg.Auth.OTPVerifyLimit, cfg.Auth.OTPResendWindow, nil)
	}

	authUC := auth.NewAuthUseCase(shopRepo, notifier, limiter, auth.Config{
		JWT: auth.JWTConfig{
			Secret: cfg.JWT.Secret,
			TTL:    cfg.JWT.TTL(),
			Issuer: cfg.JWT.Issuer,
		},
		FrontendURL:   cfg.App.FrontendURL,
		VerifyLimiter: verifyLimiter,
	})
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryUseCase(itemRepo, warehouseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigin,
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization, fiber.HeaderXRequestID}, ","),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "StockMate API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
