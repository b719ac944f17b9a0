package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/storage"
)

// Services bundles everything the HTTP surface exposes.
type Services struct {
	Vehicles      service.VehicleService
	Customers     service.CustomerService
	Rentals       service.RentalService
	Reservations  service.ReservationService
	Maintenance   service.MaintenanceService
	Activities    service.ActivityService
	Dashboard     service.DashboardService
	Notifications service.NotificationService
	Settings      service.SettingsService
	Exchange      service.ExchangeService
	Documents     storage.DocumentStorage
}

// NewRouter builds the full API router under /api/v1.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogging)

	api := router.PathPrefix("/api/v1").Subrouter()
	NewVehicleHandler(svcs.Vehicles).RegisterRoutes(api)
	NewCustomerHandler(svcs.Customers).RegisterRoutes(api)
	NewRentalHandler(svcs.Rentals).RegisterRoutes(api)
	NewReservationHandler(svcs.Reservations).RegisterRoutes(api)
	NewMaintenanceHandler(svcs.Maintenance).RegisterRoutes(api)
	NewActivityHandler(svcs.Activities).RegisterRoutes(api)
	NewDashboardHandler(svcs.Dashboard).RegisterRoutes(api)
	NewNotificationHandler(svcs.Notifications).RegisterRoutes(api)
	NewSettingsHandler(svcs.Settings).RegisterRoutes(api)
	NewExchangeHandler(svcs.Exchange).RegisterRoutes(api)
	NewDocumentHandler(svcs.Documents).RegisterRoutes(api)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Handled request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
