package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type vehicleRepository struct {
	d *data
}

func (r *vehicleRepository) Create(_ context.Context, v *domain.Vehicle) error {
	r.d.snap.Vehicles = append([]domain.Vehicle{*v}, r.d.snap.Vehicles...)
	return nil
}

func (r *vehicleRepository) GetByPlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	for i := range r.d.snap.Vehicles {
		if r.d.snap.Vehicles[i].Plate == plate {
			v := r.d.snap.Vehicles[i]
			return &v, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (r *vehicleRepository) Update(_ context.Context, v *domain.Vehicle) error {
	for i := range r.d.snap.Vehicles {
		if r.d.snap.Vehicles[i].Plate == v.Plate {
			r.d.snap.Vehicles[i] = *v
			return nil
		}
	}
	return domain.ErrVehicleNotFound
}

func (r *vehicleRepository) Delete(_ context.Context, plate string) error {
	for i := range r.d.snap.Vehicles {
		if r.d.snap.Vehicles[i].Plate == plate {
			r.d.snap.Vehicles = slices.Delete(r.d.snap.Vehicles, i, i+1)
			return nil
		}
	}
	return domain.ErrVehicleNotFound
}

func (r *vehicleRepository) List(_ context.Context) ([]domain.Vehicle, error) {
	return slices.Clone(r.d.snap.Vehicles), nil
}
