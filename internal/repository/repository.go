package repository

import (
	"context"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

// Entity repositories expose add (prepend), lookup and replace by stable id,
// delete by stable id, and full-collection reads. Partial updates are done by
// the services as read-modify-write under the store lock.

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, plate string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Rental, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Reservation, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int64) (*domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Maintenance, error)
}

// ActivityRepository keeps the bounded, most-recent-first activity log.
type ActivityRepository interface {
	// Append prepends an entry and truncates the log to its limit.
	Append(ctx context.Context, a domain.Activity) error
	List(ctx context.Context) ([]domain.Activity, error)
}
