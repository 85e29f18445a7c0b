package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/smartstock-api/internal/application/backup"
	"github.com/smartstock/smartstock-api/internal/application/inventory"
	"github.com/smartstock/smartstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	DashboardUC *usecase.DashboardUseCase
	AIUC        *usecase.AIUseCase
	Inventory   *inventory.Service
	BackupUC    *backup.UseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas: el
// sistema es de un solo inquilino y corre en red confiable.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	// Inventory movements + ledger
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	api.Post("/inventory/movements", inventoryHandler.RegisterMovement)
	api.Get("/transactions", inventoryHandler.ListTransactions)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Backup
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup/export", backupHandler.Export)
	api.Post("/backup/import", backupHandler.Import)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Stats)

	// AI
	aiHandler := NewAIHandler(deps.AIUC)
	api.Get("/ai/insights", aiHandler.Insights)
	api.Post("/ai/chat", aiHandler.Chat)
}
