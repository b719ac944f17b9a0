package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type rentalRepository struct {
	d *data
}

func (r *rentalRepository) Create(_ context.Context, rental *domain.Rental) error {
	if rental.ID == 0 {
		rental.ID = r.d.nextID()
	} else if rental.ID > r.d.seq {
		r.d.seq = rental.ID
	}
	r.d.snap.Rentals = append([]domain.Rental{*rental}, r.d.snap.Rentals...)
	return nil
}

func (r *rentalRepository) GetByID(_ context.Context, id int64) (*domain.Rental, error) {
	for i := range r.d.snap.Rentals {
		if r.d.snap.Rentals[i].ID == id {
			rental := r.d.snap.Rentals[i]
			return &rental, nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

func (r *rentalRepository) Update(_ context.Context, rental *domain.Rental) error {
	for i := range r.d.snap.Rentals {
		if r.d.snap.Rentals[i].ID == rental.ID {
			r.d.snap.Rentals[i] = *rental
			return nil
		}
	}
	return domain.ErrRentalNotFound
}

func (r *rentalRepository) Delete(_ context.Context, id int64) error {
	for i := range r.d.snap.Rentals {
		if r.d.snap.Rentals[i].ID == id {
			r.d.snap.Rentals = slices.Delete(r.d.snap.Rentals, i, i+1)
			return nil
		}
	}
	return domain.ErrRentalNotFound
}

func (r *rentalRepository) List(_ context.Context) ([]domain.Rental, error) {
	return slices.Clone(r.d.snap.Rentals), nil
}

func (r *rentalRepository) ListByCustomer(_ context.Context, customerID int64) ([]domain.Rental, error) {
	var out []domain.Rental
	for _, rental := range r.d.snap.Rentals {
		if rental.CustomerID == customerID {
			out = append(out, rental)
		}
	}
	return out, nil
}
