package service

import (
	"context"
	"errors"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type reservationService struct {
	tx           repository.Tx
	reservations repository.ReservationRepository
	vehicles     repository.VehicleRepository
	customers    repository.CustomerRepository
}

func NewReservationService(
	tx repository.Tx,
	reservations repository.ReservationRepository,
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
) ReservationService {
	return &reservationService{
		tx:           tx,
		reservations: reservations,
		vehicles:     vehicles,
		customers:    customers,
	}
}

// CreateReservation records a planned rental. Reservations do not block
// overlapping rentals or other reservations on the same vehicle.
func (s *reservationService) CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if r.StartDate == "" || r.EndDate == "" {
		return nil, errors.New("start and end dates are required")
	}
	if _, err := datex.ParseDate(r.StartDate); err != nil {
		return nil, err
	}
	if _, err := datex.ParseDate(r.EndDate); err != nil {
		return nil, err
	}
	if r.Status == "" {
		r.Status = domain.ReservationStatusActive
	}
	err := s.tx.Atomic(func() error {
		if _, err := s.vehicles.GetByPlate(ctx, r.VehiclePlate); err != nil {
			return err
		}
		if _, err := s.customers.GetByID(ctx, r.CustomerID); err != nil {
			return err
		}
		return s.reservations.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	err := s.tx.Atomic(func() error {
		if _, err := s.reservations.GetByID(ctx, r.ID); err != nil {
			return err
		}
		return s.reservations.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int64) error {
	return s.tx.Atomic(func() error {
		return s.reservations.Delete(ctx, id)
	})
}

func (s *reservationService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	var err error
	s.tx.View(func() {
		out, err = s.reservations.List(ctx)
	})
	return out, err
}
