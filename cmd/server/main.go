package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dvergara/Household-Finance-Backend/internal/api"
	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/config"
	"github.com/dvergara/Household-Finance-Backend/internal/database"
	"github.com/dvergara/Household-Finance-Backend/internal/ingest"
	"github.com/dvergara/Household-Finance-Backend/internal/repository"
	"github.com/dvergara/Household-Finance-Backend/internal/service"
	"github.com/dvergara/Household-Finance-Backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories and the shared working set
	purchaseRepo := repository.NewPurchaseRepository(db)
	data := store.NewDataset()

	// Create services
	systemService := service.NewSystemService(db)
	datasetService := service.NewDatasetService(
		data,
		ingest.NewDirSource(cfg.Data.Dir),
		ingest.NewDirSource(cfg.Data.PurchasesDir),
		purchaseRepo,
		cfg.Data.FirstPurchaseYear,
	)
	reportService := service.NewReportService(data)
	purchaseService := service.NewPurchaseService(data, purchaseRepo, cfg.Data.PurchasesDir)

	// Initial load of the three datasets
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := datasetService.LoadAll(loadCtx); err != nil {
		if !errors.Is(err, apperrors.ErrNoUsableInput) {
			cancelLoad()
			log.Fatalf("Failed to load datasets: %v", err)
		}
		// Serve the other datasets; the transaction views stay empty until
		// a usable export shows up on the next reload.
		log.Printf("No usable transaction file, serving an empty dataset: %v", err)
	}
	cancelLoad()

	// Periodic reload of the export files
	var scheduler *cron.Cron
	if cfg.Reload.Schedule != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.Reload.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			datasetService.Reload(ctx)
		}); err != nil {
			log.Fatalf("Invalid reload schedule %q: %v", cfg.Reload.Schedule, err)
		}
		scheduler.Start()
		log.Printf("Reload scheduled: %s", cfg.Reload.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, reportService, purchaseService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
