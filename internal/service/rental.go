package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type rentalService struct {
	tx         repository.Tx
	rentals    repository.RentalRepository
	vehicles   repository.VehicleRepository
	customers  repository.CustomerRepository
	activities repository.ActivityRepository
	now        func() time.Time
}

func NewRentalService(
	tx repository.Tx,
	rentals repository.RentalRepository,
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
	activities repository.ActivityRepository,
) RentalService {
	return &rentalService{
		tx:         tx,
		rentals:    rentals,
		vehicles:   vehicles,
		customers:  customers,
		activities: activities,
		now:        time.Now,
	}
}

// StartRental checks a vehicle out. The vehicle lookup, the optional customer
// registration, the rental creation and the vehicle stamping all happen in a
// single transition so no reader can observe a rented vehicle without its
// active rental.
func (s *rentalService) StartRental(ctx context.Context, in StartRentalInput) (*domain.Rental, error) {
	if in.StartDate == "" {
		return nil, errors.New("start date is required")
	}
	if _, err := datex.ParseDate(in.StartDate); err != nil {
		return nil, err
	}
	if in.CustomerID == 0 && in.NewCustomer == nil {
		return nil, errors.New("a customer is required")
	}
	if in.PriceType == "" {
		in.PriceType = domain.PriceTypeDaily
	}
	if in.PriceType != domain.PriceTypeDaily && in.PriceType != domain.PriceTypeMonthly {
		return nil, fmt.Errorf("invalid price type %q", in.PriceType)
	}

	var rental *domain.Rental
	err := s.tx.Atomic(func() error {
		vehicle, err := s.vehicles.GetByPlate(ctx, in.VehiclePlate)
		if err != nil {
			return err
		}
		if vehicle.Status == domain.VehicleStatusRented {
			return domain.ErrVehicleRented
		}

		customer := in.NewCustomer
		if customer != nil {
			if err := createCustomerLocked(ctx, s.customers, s.activities, customer, s.now()); err != nil {
				return err
			}
		} else {
			customer, err = s.customers.GetByID(ctx, in.CustomerID)
			if err != nil {
				return err
			}
		}

		rental = &domain.Rental{
			VehiclePlate: vehicle.Plate,
			CustomerID:   customer.ID,
			StartDate:    in.StartDate,
			StartKm:      in.StartKm,
			Price:        in.Price,
			PriceType:    in.PriceType,
			Status:       domain.RentalStatusActive,
		}
		if err := s.rentals.Create(ctx, rental); err != nil {
			return err
		}

		vehicle.Status = domain.VehicleStatusRented
		vehicle.RentedBy = &domain.RenterInfo{Name: customer.Name, Phone: customer.Phone}
		vehicle.ActiveRentalID = rental.ID
		if err := s.vehicles.Update(ctx, vehicle); err != nil {
			return err
		}

		return s.activities.Append(ctx, domain.Activity{
			Icon:    "fa-file-signature",
			Message: fmt.Sprintf("<strong>%s</strong>, <em>%s</em> plakalı aracı kiraladı.", customer.Name, vehicle.Plate),
			Time:    s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// CompleteRental checks the vehicle back in. The billed day count and total
// cost are computed exactly once here and never recomputed; a second check-in
// on the same rental fails.
func (s *rentalService) CompleteRental(ctx context.Context, rentalID int64, returnDate string, returnKm int) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.Atomic(func() error {
		var err error
		rental, err = s.rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusActive {
			return domain.ErrRentalCompleted
		}

		days, err := datex.RentedDays(rental.StartDate, returnDate)
		if err != nil {
			return err
		}
		cost := datex.RentalCost(days, rental.Price, rental.PriceType)

		rental.EndDate = &returnDate
		rental.EndKm = &returnKm
		rental.TotalCost = &cost
		rental.Status = domain.RentalStatusCompleted
		if err := s.rentals.Update(ctx, rental); err != nil {
			return err
		}

		// A vehicle deleted while rented out does not block the check-in.
		if vehicle, err := s.vehicles.GetByPlate(ctx, rental.VehiclePlate); err == nil {
			vehicle.Status = domain.VehicleStatusAvailable
			vehicle.Km = returnKm
			vehicle.RentedBy = nil
			vehicle.ActiveRentalID = 0
			if err := s.vehicles.Update(ctx, vehicle); err != nil {
				return err
			}
		}

		return s.activities.Append(ctx, domain.Activity{
			Icon:    "fa-right-to-bracket",
			Message: fmt.Sprintf("<em>%s</em> plakalı araç teslim alındı.", rental.VehiclePlate),
			Time:    s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	var r *domain.Rental
	var err error
	s.tx.View(func() {
		r, err = s.rentals.GetByID(ctx, id)
	})
	return r, err
}

func (s *rentalService) UpdateRental(ctx context.Context, r *domain.Rental) (*domain.Rental, error) {
	err := s.tx.Atomic(func() error {
		current, err := s.rentals.GetByID(ctx, r.ID)
		if err != nil {
			return err
		}
		// Lifecycle fields stay with the check-in operation.
		r.Status = current.Status
		r.EndDate = current.EndDate
		r.EndKm = current.EndKm
		r.TotalCost = current.TotalCost
		return s.rentals.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	return s.tx.Atomic(func() error {
		rental, err := s.rentals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		// Deleting an active rental frees the vehicle it was stamped on.
		if rental.Status == domain.RentalStatusActive {
			if vehicle, err := s.vehicles.GetByPlate(ctx, rental.VehiclePlate); err == nil && vehicle.ActiveRentalID == id {
				vehicle.Status = domain.VehicleStatusAvailable
				vehicle.RentedBy = nil
				vehicle.ActiveRentalID = 0
				if err := s.vehicles.Update(ctx, vehicle); err != nil {
					return err
				}
			}
		}
		return s.rentals.Delete(ctx, id)
	})
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	var out []domain.Rental
	var err error
	s.tx.View(func() {
		out, err = s.rentals.List(ctx)
	})
	return out, err
}
