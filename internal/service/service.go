package service

import (
	"context"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, plate string) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, plate string) error
	// ListVehicles filters by a free-text query over plate and brand; with
	// expiringOnly set, only vehicles whose insurance or inspection falls
	// inside the reminder horizon are returned.
	ListVehicles(ctx context.Context, query string, expiringOnly bool) ([]domain.Vehicle, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	// RentalHistory is a display projection derived from the rental store,
	// not a field stored on the customer.
	RentalHistory(ctx context.Context, customerID int64) ([]domain.RentalSummary, error)
}

// StartRentalInput carries the check-out form. Exactly one of CustomerID or
// NewCustomer must be set: the new-customer path creates the customer first,
// inside the same transition.
type StartRentalInput struct {
	VehiclePlate string
	CustomerID   int64
	NewCustomer  *domain.Customer
	StartDate    string
	StartKm      int
	Price        float64
	PriceType    domain.PriceType
}

type RentalService interface {
	StartRental(ctx context.Context, in StartRentalInput) (*domain.Rental, error)
	// CompleteRental checks a vehicle back in: stamps end date/km, computes
	// the total cost once, and frees the vehicle.
	CompleteRental(ctx context.Context, rentalID int64, returnDate string, returnKm int) (*domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	UpdateRental(ctx context.Context, r *domain.Rental) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
}

type MaintenanceService interface {
	// CreateMaintenance derives missing next-due fields (service km + 15000,
	// service date + 1 year); they are stored immutably afterwards.
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id int64) error
	ListMaintenance(ctx context.Context) ([]domain.Maintenance, error)
}

type ActivityService interface {
	LogActivity(ctx context.Context, icon, message string) error
	ListActivities(ctx context.Context) ([]domain.Activity, error)
}

// FleetCounts are the dashboard status counts.
type FleetCounts struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Rented        int `json:"rented"`
	InMaintenance int `json:"maintenance"`
}

type DashboardService interface {
	FleetCounts(ctx context.Context) (FleetCounts, error)
	// MonthlyIncome sums completed rentals whose end date falls in the given
	// local calendar month. Active rentals never contribute.
	MonthlyIncome(ctx context.Context, month time.Month, year int) (float64, error)
	// UpcomingReminders lists insurance, inspection and next-maintenance
	// dates inside the reminder horizon, soonest (or most overdue) first.
	UpcomingReminders(ctx context.Context) ([]domain.Reminder, error)
}

type NotificationFilter string

const (
	NotificationFilterAll        NotificationFilter = "all"
	NotificationFilterReminders  NotificationFilter = "reminders"
	NotificationFilterActivities NotificationFilter = "activities"
)

type NotificationService interface {
	// Feed merges due-date reminders and recent activities into one list
	// sorted descending by time.
	Feed(ctx context.Context, filter NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// Preferences bundles the persisted UI preference state.
type Preferences struct {
	Theme    domain.Theme    `json:"theme"`
	Settings domain.Settings `json:"settings"`
}

type SettingsService interface {
	GetPreferences(ctx context.Context) (Preferences, error)
	SetTheme(ctx context.Context, t domain.Theme) error
	UpdateSettings(ctx context.Context, s domain.Settings) error
}

// ImportSummary reports what an import applied.
type ImportSummary struct {
	Format    string `json:"format"` // "native" or "legacy"
	Vehicles  int    `json:"vehicles"`
	Customers int    `json:"customers"`
	Rentals   int    `json:"rentals"`
}

type ExchangeService interface {
	Export(ctx context.Context) (*persist.Snapshot, error)
	// Import detects the file shape (native snapshot or the recognized
	// legacy backup format), converts legacy records, and replaces the
	// store state. Nothing is applied when the content is unrecognized.
	Import(ctx context.Context, data []byte) (*ImportSummary, error)
}
