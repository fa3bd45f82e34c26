package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradevault/Trade-Journal-Backend/internal/api"
	"github.com/tradevault/Trade-Journal-Backend/internal/config"
	"github.com/tradevault/Trade-Journal-Backend/internal/database"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
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
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	tradeRepo := repository.NewTradeRepository(db)
	journalRepo := repository.NewJournalEntryRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	summaryCacheRepo := repository.NewSummaryCacheRepository(db)

	// Create services
	systemService, err := service.NewSystemService(db, settingRepo, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create system service: %v", err)
	}
	tradeService := service.NewTradeService(tradeRepo)
	journalService := service.NewJournalService(journalRepo, tradeRepo)
	analyticsService := service.NewAnalyticsService(tradeService)
	summaryCacheService := service.NewSummaryCacheService(summaryCacheRepo, tradeService)
	importExportService := service.NewImportExportService(tradeService)

	// Schedule the summary cache rebuild
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Scheduler.SummaryRefreshSchedule, summaryCacheService.RefreshJob); err != nil {
		log.Fatalf("Failed to schedule summary refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, tradeService, journalService, analyticsService, summaryCacheService, importExportService, cfg)

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

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
