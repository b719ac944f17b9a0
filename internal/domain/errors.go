package domain

import "errors"

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")

	// ErrVehicleRented is returned when a rental is started on a vehicle that
	// already carries an active rental.
	ErrVehicleRented = errors.New("vehicle already rented")

	// ErrRentalCompleted is returned when check-in is attempted on a rental
	// that is not active; the stored total cost is never recomputed.
	ErrRentalCompleted = errors.New("rental already completed")
)
