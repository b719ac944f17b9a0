package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "github.com/sametkarakasoglu-wq/filoooo-web/internal/api/http"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/config"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/jobs"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/scheduler"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/storage"
)

func main() {
	// Environment overrides may come from a local .env file
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting fleet console backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Data configuration", "snapshot_path", cfg.Data.SnapshotPath, "upload_dir", cfg.Data.UploadDir)

	// Initialize persistence and the store
	gateway, err := persist.NewFileGateway(cfg.Data.SnapshotPath)
	if err != nil {
		logger.Error("Failed to initialize snapshot gateway", "error", err)
		log.Fatalf("Failed to initialize snapshot gateway: %v", err)
	}
	store := memory.NewStore(gateway)

	// Initialize document storage
	docs, err := storage.NewLocalStorage(cfg.Data.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize document storage", "error", err)
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	// Initialize services
	vehicleSvc := service.NewVehicleService(store, store.VehicleRepository, store.ActivityRepository, store)
	customerSvc := service.NewCustomerService(store, store.CustomerRepository, store.RentalRepository, store.ActivityRepository)
	rentalSvc := service.NewRentalService(store, store.RentalRepository, store.VehicleRepository, store.CustomerRepository, store.ActivityRepository)
	reservationSvc := service.NewReservationService(store, store.ReservationRepository, store.VehicleRepository, store.CustomerRepository)
	maintenanceSvc := service.NewMaintenanceService(store, store.MaintenanceRepository, store.VehicleRepository, store.ActivityRepository)
	activitySvc := service.NewActivityService(store, store.ActivityRepository)
	dashboardSvc := service.NewDashboardService(store, store.VehicleRepository, store.RentalRepository, store.MaintenanceRepository, store)
	notificationSvc := service.NewNotificationService(store, store.VehicleRepository, store.MaintenanceRepository, store.ActivityRepository, store)
	settingsSvc := service.NewSettingsService(store, store)
	exchangeSvc := service.NewExchangeService(store, store)

	router := httpapi.NewRouter(httpapi.Services{
		Vehicles:      vehicleSvc,
		Customers:     customerSvc,
		Rentals:       rentalSvc,
		Reservations:  reservationSvc,
		Maintenance:   maintenanceSvc,
		Activities:    activitySvc,
		Dashboard:     dashboardSvc,
		Notifications: notificationSvc,
		Settings:      settingsSvc,
		Exchange:      exchangeSvc,
		Documents:     docs,
	})

	// Scheduled jobs run in-process; the store owns a single snapshot file.
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Dashboard: dashboardSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	// Final checkpoint so nothing written since the last mutation is lost.
	store.Persist()
	logger.Info("Shutdown complete")
}
