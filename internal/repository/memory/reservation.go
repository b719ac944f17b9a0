package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type reservationRepository struct {
	d *data
}

func (r *reservationRepository) Create(_ context.Context, res *domain.Reservation) error {
	if res.ID == 0 {
		res.ID = r.d.nextID()
	} else if res.ID > r.d.seq {
		r.d.seq = res.ID
	}
	r.d.snap.Reservations = append([]domain.Reservation{*res}, r.d.snap.Reservations...)
	return nil
}

func (r *reservationRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	for i := range r.d.snap.Reservations {
		if r.d.snap.Reservations[i].ID == id {
			res := r.d.snap.Reservations[i]
			return &res, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (r *reservationRepository) Update(_ context.Context, res *domain.Reservation) error {
	for i := range r.d.snap.Reservations {
		if r.d.snap.Reservations[i].ID == res.ID {
			r.d.snap.Reservations[i] = *res
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (r *reservationRepository) Delete(_ context.Context, id int64) error {
	for i := range r.d.snap.Reservations {
		if r.d.snap.Reservations[i].ID == id {
			r.d.snap.Reservations = slices.Delete(r.d.snap.Reservations, i, i+1)
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (r *reservationRepository) List(_ context.Context) ([]domain.Reservation, error) {
	return slices.Clone(r.d.snap.Reservations), nil
}
