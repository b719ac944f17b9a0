package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type maintenanceRepository struct {
	d *data
}

func (r *maintenanceRepository) Create(_ context.Context, m *domain.Maintenance) error {
	if m.ID == 0 {
		m.ID = r.d.nextID()
	} else if m.ID > r.d.seq {
		r.d.seq = m.ID
	}
	r.d.snap.Maintenance = append([]domain.Maintenance{*m}, r.d.snap.Maintenance...)
	return nil
}

func (r *maintenanceRepository) GetByID(_ context.Context, id int64) (*domain.Maintenance, error) {
	for i := range r.d.snap.Maintenance {
		if r.d.snap.Maintenance[i].ID == id {
			m := r.d.snap.Maintenance[i]
			return &m, nil
		}
	}
	return nil, domain.ErrMaintenanceNotFound
}

func (r *maintenanceRepository) Update(_ context.Context, m *domain.Maintenance) error {
	for i := range r.d.snap.Maintenance {
		if r.d.snap.Maintenance[i].ID == m.ID {
			r.d.snap.Maintenance[i] = *m
			return nil
		}
	}
	return domain.ErrMaintenanceNotFound
}

func (r *maintenanceRepository) Delete(_ context.Context, id int64) error {
	for i := range r.d.snap.Maintenance {
		if r.d.snap.Maintenance[i].ID == id {
			r.d.snap.Maintenance = slices.Delete(r.d.snap.Maintenance, i, i+1)
			return nil
		}
	}
	return domain.ErrMaintenanceNotFound
}

func (r *maintenanceRepository) List(_ context.Context) ([]domain.Maintenance, error) {
	return slices.Clone(r.d.snap.Maintenance), nil
}
