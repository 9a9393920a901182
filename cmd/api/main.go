package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	actionsHttp "wms-performance-service/internal/actions/adapters/http/fiber"
	actionsMemory "wms-performance-service/internal/actions/adapters/memory"
	actionsSQL "wms-performance-service/internal/actions/adapters/sqlstore"
	actionsXlsx "wms-performance-service/internal/actions/adapters/xlsx"
	actionsPorts "wms-performance-service/internal/actions/core/ports"
	actionsUsecase "wms-performance-service/internal/actions/core/usecase"
	"wms-performance-service/internal/config"

	performanceDatasets "wms-performance-service/internal/performance/adapters/datasets"
	performanceHttp "wms-performance-service/internal/performance/adapters/http/fiber"
	performanceUsecase "wms-performance-service/internal/performance/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "wms-performance-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// SQL action source (optional)
	var source actionsPorts.ActionSourcePort
	if cfg.Source.DSN != "" {
		db, err := sql.Open(cfg.Source.Driver, cfg.Source.DSN)
		if err != nil {
			log.Fatalf("failed to open %s: %v", cfg.Source.Driver, err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Source.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Source.MaxOpenConns / 2)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping %s: %v", cfg.Source.Driver, err)
		}

		source = actionsSQL.NewActionRepository(actionsSQL.NewSQLDB(db, cfg.Source.Driver), cfg.Source.Driver)
		log.Printf("sql action source enabled (%s)", cfg.Source.Driver)
	} else {
		log.Println("source.dsn is empty, serving uploaded workbooks only")
	}

	// Adapters
	cache := actionsMemory.NewDatasetCache(cfg.Cache.MaxEntries)
	parser := actionsXlsx.NewParser()

	// Usecases
	loadActionsUC := actionsUsecase.NewLoadActionsUseCase(source, parser, cache, cfg.Cache.SQLTTL)
	reader := performanceDatasets.NewReader(loadActionsUC)
	getReportUC := performanceUsecase.NewGetReportUseCase(reader)
	compareUC := performanceUsecase.NewCompareUseCase(reader)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Upload.MaxBytes,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// dataset endpoints
	datasetHandler := actionsHttp.NewDatasetHandler(loadActionsUC)
	app.Post("/datasets", datasetHandler.UploadDataset)
	app.Get("/datasets", datasetHandler.ListDatasets)

	// report endpoints
	performanceHandler := performanceHttp.NewPerformanceHandler(getReportUC, compareUC)
	app.Get("/reports", performanceHandler.GetReport)
	app.Get("/comparisons", performanceHandler.Compare)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
