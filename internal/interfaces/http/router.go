package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmabol/farmacia-api/internal/application/auth"
	"github.com/farmabol/farmacia-api/internal/application/inventory"
	"github.com/farmabol/farmacia-api/internal/application/reports"
	"github.com/farmabol/farmacia-api/internal/application/sales"
	"github.com/farmabol/farmacia-api/internal/application/usecase"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	SaleUC      *sales.SaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
	UserUC      *usecase.UserUseCase
	ConfigUC    *usecase.ConfigUseCase
	ReportUC    *reports.ReportUseCase
	Users       userLookup
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-admin", authHandler.RegisterAdmin)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (módulo inventory; eliminar exige ADMIN)
	productHandler := NewProductHandler(deps.InventoryUC)
	products := protected.Group("/products", RequireModule(entity.ModuleInventory, "", deps.Users))
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireModule(entity.ModuleInventory, entity.RoleAdmin, deps.Users), productHandler.Delete)
	products.Post("/:id/restock", productHandler.Restock)
	products.Post("/:id/adjust", productHandler.Adjust)

	// Movements (módulo history)
	protected.Get("/movements", RequireModule(entity.ModuleHistory, "", deps.Users), productHandler.Movements)

	// Sales (módulo sales)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup := protected.Group("/sales", RequireModule(entity.ModuleSales, "", deps.Users))
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Users (módulo users, solo ADMIN)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireModule(entity.ModuleUsers, entity.RoleAdmin, deps.Users))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Config (lectura autenticada; escritura solo ADMIN)
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config", RequireModule(entity.ModuleConfig, entity.RoleAdmin, deps.Users), configHandler.Update)

	// Reports y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := protected.Group("/reports", RequireModule(entity.ModuleReports, "", deps.Users))
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	protected.Get("/dashboard", RequireModule(entity.ModuleDashboard, "", deps.Users), reportHandler.Dashboard)
}
