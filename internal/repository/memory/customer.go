package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type customerRepository struct {
	d *data
}

func (r *customerRepository) Create(_ context.Context, c *domain.Customer) error {
	if c.ID == 0 {
		c.ID = r.d.nextID()
	} else if c.ID > r.d.seq {
		r.d.seq = c.ID
	}
	r.d.snap.Customers = append([]domain.Customer{*c}, r.d.snap.Customers...)
	return nil
}

func (r *customerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for i := range r.d.snap.Customers {
		if r.d.snap.Customers[i].ID == id {
			c := r.d.snap.Customers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *customerRepository) Update(_ context.Context, c *domain.Customer) error {
	for i := range r.d.snap.Customers {
		if r.d.snap.Customers[i].ID == c.ID {
			r.d.snap.Customers[i] = *c
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (r *customerRepository) Delete(_ context.Context, id int64) error {
	for i := range r.d.snap.Customers {
		if r.d.snap.Customers[i].ID == id {
			r.d.snap.Customers = slices.Delete(r.d.snap.Customers, i, i+1)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (r *customerRepository) List(_ context.Context) ([]domain.Customer, error) {
	return slices.Clone(r.d.snap.Customers), nil
}
