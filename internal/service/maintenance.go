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

type maintenanceService struct {
	tx          repository.Tx
	maintenance repository.MaintenanceRepository
	vehicles    repository.VehicleRepository
	activities  repository.ActivityRepository
	now         func() time.Time
}

func NewMaintenanceService(
	tx repository.Tx,
	maintenance repository.MaintenanceRepository,
	vehicles repository.VehicleRepository,
	activities repository.ActivityRepository,
) MaintenanceService {
	return &maintenanceService{
		tx:          tx,
		maintenance: maintenance,
		vehicles:    vehicles,
		activities:  activities,
		now:         time.Now,
	}
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	if m.MaintenanceDate == "" {
		return nil, errors.New("maintenance date is required")
	}
	if _, err := datex.ParseDate(m.MaintenanceDate); err != nil {
		return nil, err
	}
	if m.NextMaintenanceKm == 0 {
		m.NextMaintenanceKm = m.MaintenanceKm + domain.NextMaintenanceKmInterval
	}
	if m.NextMaintenanceDate == "" {
		next, err := datex.NextMaintenanceDate(m.MaintenanceDate)
		if err != nil {
			return nil, err
		}
		m.NextMaintenanceDate = next
	}

	err := s.tx.Atomic(func() error {
		if _, err := s.vehicles.GetByPlate(ctx, m.VehiclePlate); err != nil {
			return err
		}
		if err := s.maintenance.Create(ctx, m); err != nil {
			return err
		}
		return s.activities.Append(ctx, domain.Activity{
			Icon:    "fa-oil-can",
			Message: fmt.Sprintf("<em>%s</em> plakalı araca bakım kaydı girildi.", m.VehiclePlate),
			Time:    s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMaintenance edits a record in place. The next-due fields were derived
// at creation time and are kept as stored, not recomputed from the edit.
func (s *maintenanceService) UpdateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	err := s.tx.Atomic(func() error {
		current, err := s.maintenance.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if m.NextMaintenanceKm == 0 {
			m.NextMaintenanceKm = current.NextMaintenanceKm
		}
		if m.NextMaintenanceDate == "" {
			m.NextMaintenanceDate = current.NextMaintenanceDate
		}
		return s.maintenance.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) DeleteMaintenance(ctx context.Context, id int64) error {
	return s.tx.Atomic(func() error {
		return s.maintenance.Delete(ctx, id)
	})
}

func (s *maintenanceService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	var out []domain.Maintenance
	var err error
	s.tx.View(func() {
		out, err = s.maintenance.List(ctx)
	})
	return out, err
}
