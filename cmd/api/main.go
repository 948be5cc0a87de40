package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/farmabol/farmacia-api/internal/application/auth"
	"github.com/farmabol/farmacia-api/internal/application/inventory"
	"github.com/farmabol/farmacia-api/internal/application/reports"
	"github.com/farmabol/farmacia-api/internal/application/sales"
	"github.com/farmabol/farmacia-api/internal/application/usecase"
	infracache "github.com/farmabol/farmacia-api/internal/infrastructure/cache"
	infrapdf "github.com/farmabol/farmacia-api/internal/infrastructure/pdf"
	"github.com/farmabol/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/farmabol/farmacia-api/internal/interfaces/http"
	"github.com/farmabol/farmacia-api/pkg/config"
	"github.com/farmabol/farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Cache del dashboard: Redis si está configurado, noop si no.
	var dashCache infracache.DashboardCache = infracache.NoopDashboardCache{}
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisDashboardCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, dashboard sin cache")
		} else {
			dashCache = redisCache
			defer redisCache.Close()
		}
	}
	cacheTTL := time.Duration(cfg.Redis.TTLSec) * time.Second

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	configRepo := postgres.NewConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewInventoryUseCase(txRunner, productRepo, movementRepo, dashCache)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, dashCache)
	receiptUC := sales.NewReceiptUseCase(saleRepo, configRepo, infrapdf.NewMarotoReceiptGenerator())
	userUC := usecase.NewUserUseCase(userRepo)
	configUC := usecase.NewConfigUseCase(configRepo)
	reportUC := reports.NewReportUseCase(saleRepo, productRepo, dashCache, cacheTTL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		SaleUC:      saleUC,
		ReceiptUC:   receiptUC,
		UserUC:      userUC,
		ConfigUC:    configUC,
		ReportUC:    reportUC,
		Users:       userRepo,
		JWTSecret:   cfg.JWT.Secret,
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
