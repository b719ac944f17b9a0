package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type vehicleService struct {
	tx         repository.Tx
	vehicles   repository.VehicleRepository
	activities repository.ActivityRepository
	prefs      repository.PreferenceRepository
	now        func() time.Time
}

func NewVehicleService(
	tx repository.Tx,
	vehicles repository.VehicleRepository,
	activities repository.ActivityRepository,
	prefs repository.PreferenceRepository,
) VehicleService {
	return &vehicleService{
		tx:         tx,
		vehicles:   vehicles,
		activities: activities,
		prefs:      prefs,
		now:        time.Now,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if strings.TrimSpace(v.Plate) == "" {
		return nil, errors.New("plate is required")
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	// New vehicles never carry an active rental.
	v.RentedBy = nil
	v.ActiveRentalID = 0

	err := s.tx.Atomic(func() error {
		if err := s.vehicles.Create(ctx, v); err != nil {
			return err
		}
		return s.activities.Append(ctx, domain.Activity{
			Icon:    "fa-car-side",
			Message: fmt.Sprintf("<strong>%s</strong> plakalı yeni araç filoya eklendi.", v.Plate),
			Time:    s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var v *domain.Vehicle
	var err error
	s.tx.View(func() {
		v, err = s.vehicles.GetByPlate(ctx, plate)
	})
	return v, err
}

// UpdateVehicle edits the vehicle record. The rental stamps (RentedBy,
// ActiveRentalID) are owned by the rental lifecycle and always preserved,
// and a rented vehicle keeps its Kirada status regardless of the edit.
func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	var out *domain.Vehicle
	err := s.tx.Atomic(func() error {
		current, err := s.vehicles.GetByPlate(ctx, v.Plate)
		if err != nil {
			return err
		}
		v.RentedBy = current.RentedBy
		v.ActiveRentalID = current.ActiveRentalID
		if current.Status == domain.VehicleStatusRented {
			v.Status = domain.VehicleStatusRented
		} else if v.Status == "" || v.Status == domain.VehicleStatusRented {
			v.Status = current.Status
		}
		if err := s.vehicles.Update(ctx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, plate string) error {
	return s.tx.Atomic(func() error {
		return s.vehicles.Delete(ctx, plate)
	})
}

func (s *vehicleService) ListVehicles(ctx context.Context, query string, expiringOnly bool) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	var err error
	s.tx.View(func() {
		var all []domain.Vehicle
		all, err = s.vehicles.List(ctx)
		if err != nil {
			return
		}
		var settings domain.Settings
		settings, err = s.prefs.Settings(ctx)
		if err != nil {
			return
		}
		q := strings.ToLower(strings.TrimSpace(query))
		now := s.now()
		for _, v := range all {
			if q != "" && !strings.Contains(strings.ToLower(v.Plate), q) &&
				!strings.Contains(strings.ToLower(v.Brand), q) {
				continue
			}
			if expiringOnly && !expiresWithin(v, settings.ReminderDays, now) {
				continue
			}
			out = append(out, v)
		}
	})
	return out, err
}

// expiresWithin reports whether the vehicle's insurance or inspection date
// falls inside the reminder horizon. Overdue dates count as expiring.
func expiresWithin(v domain.Vehicle, horizonDays int, now time.Time) bool {
	if days, ok := datex.DaysUntil(v.InsuranceDate, now); ok && days <= horizonDays {
		return true
	}
	if days, ok := datex.DaysUntil(v.InspectionDate, now); ok && days <= horizonDays {
		return true
	}
	return false
}
