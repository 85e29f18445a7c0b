package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/smartstock/smartstock-api/internal/application/backup"
	"github.com/smartstock/smartstock-api/internal/application/inventory"
	"github.com/smartstock/smartstock-api/internal/application/ports"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/application/usecase"
	infraai "github.com/smartstock/smartstock-api/internal/infrastructure/ai"
	infrapdf "github.com/smartstock/smartstock-api/internal/infrastructure/pdf"
	"github.com/smartstock/smartstock-api/internal/infrastructure/postgres"
	"github.com/smartstock/smartstock-api/internal/infrastructure/sqlite"
	httpRouter "github.com/smartstock/smartstock-api/internal/interfaces/http"
	"github.com/smartstock/smartstock-api/pkg/config"
	"github.com/smartstock/smartstock-api/pkg/logger"
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

	// Sustrato de persistencia: PostgreSQL si hay DATABASE_URL, SQLite local
	// en caso contrario.
	var kv ports.KVStore
	if cfg.Store.DatabaseURL != "" {
		kv, err = postgres.NewKVStore(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		log.Info().Msg("persistencia: PostgreSQL")
	} else {
		kv, err = sqlite.NewKVStore(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("persistencia: SQLite")
	}
	defer func() { _ = kv.Close() }()

	manager := state.NewManager(kv, log)
	if err := manager.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	inventorySvc := inventory.NewService(manager, log)
	backupUC := backup.NewUseCase(manager, log)
	productUC := usecase.NewProductUseCase(manager)
	customerUC := usecase.NewCustomerUseCase(manager)
	warehouseUC := usecase.NewWarehouseUseCase(manager)
	invoiceUC := usecase.NewInvoiceUseCase(manager, infrapdf.NewMarotoInvoiceGenerator())
	dashboardUC := usecase.NewDashboardUseCase(manager)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, manager, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		Inventory:   inventorySvc,
		BackupUC:    backupUC,
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
