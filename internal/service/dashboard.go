package service

import (
	"context"
	"sort"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type dashboardService struct {
	tx          repository.Tx
	vehicles    repository.VehicleRepository
	rentals     repository.RentalRepository
	maintenance repository.MaintenanceRepository
	prefs       repository.PreferenceRepository
	now         func() time.Time
}

func NewDashboardService(
	tx repository.Tx,
	vehicles repository.VehicleRepository,
	rentals repository.RentalRepository,
	maintenance repository.MaintenanceRepository,
	prefs repository.PreferenceRepository,
) DashboardService {
	return &dashboardService{
		tx:          tx,
		vehicles:    vehicles,
		rentals:     rentals,
		maintenance: maintenance,
		prefs:       prefs,
		now:         time.Now,
	}
}

func (s *dashboardService) FleetCounts(ctx context.Context) (FleetCounts, error) {
	var counts FleetCounts
	var err error
	s.tx.View(func() {
		var all []domain.Vehicle
		all, err = s.vehicles.List(ctx)
		if err != nil {
			return
		}
		counts.Total = len(all)
		for _, v := range all {
			switch v.Status {
			case domain.VehicleStatusAvailable:
				counts.Available++
			case domain.VehicleStatusRented:
				counts.Rented++
			case domain.VehicleStatusInMaintenance:
				counts.InMaintenance++
			}
		}
	})
	return counts, err
}

func (s *dashboardService) MonthlyIncome(ctx context.Context, month time.Month, year int) (float64, error) {
	var total float64
	var err error
	s.tx.View(func() {
		var all []domain.Rental
		all, err = s.rentals.List(ctx)
		if err != nil {
			return
		}
		for _, r := range all {
			if r.EndDate == nil || r.TotalCost == nil {
				continue
			}
			if datex.InMonth(*r.EndDate, month, year) {
				total += *r.TotalCost
			}
		}
	})
	return total, err
}

func (s *dashboardService) UpcomingReminders(ctx context.Context) ([]domain.Reminder, error) {
	var out []domain.Reminder
	var err error
	s.tx.View(func() {
		var vehicles []domain.Vehicle
		vehicles, err = s.vehicles.List(ctx)
		if err != nil {
			return
		}
		var records []domain.Maintenance
		records, err = s.maintenance.List(ctx)
		if err != nil {
			return
		}
		var settings domain.Settings
		settings, err = s.prefs.Settings(ctx)
		if err != nil {
			return
		}
		out = collectReminders(vehicles, records, settings.ReminderDays, s.now())
	})
	return out, err
}

// collectReminders gathers every due date inside the reminder horizon:
// insurance and inspection per vehicle, plus the next service date of each
// vehicle's most recent maintenance record. Overdue dates are kept with the
// overdue urgency bucket rather than dropped. The result is sorted most
// pressing first.
func collectReminders(vehicles []domain.Vehicle, records []domain.Maintenance, horizonDays int, now time.Time) []domain.Reminder {
	var out []domain.Reminder
	add := func(kind domain.ReminderKind, plate, date string) {
		days, ok := datex.DaysUntil(date, now)
		if !ok || days > horizonDays {
			return
		}
		out = append(out, domain.Reminder{
			Kind:         kind,
			VehiclePlate: plate,
			Date:         date,
			Days:         days,
			Urgency:      datex.UrgencyFor(days),
		})
	}

	for _, v := range vehicles {
		add(domain.ReminderKindInsurance, v.Plate, v.InsuranceDate)
		add(domain.ReminderKindInspection, v.Plate, v.InspectionDate)
	}

	// Records are most-recent-first, so the first record seen per plate is
	// the one whose next-due date matters.
	seen := make(map[string]bool)
	for _, m := range records {
		if seen[m.VehiclePlate] {
			continue
		}
		seen[m.VehiclePlate] = true
		add(domain.ReminderKindMaintenance, m.VehiclePlate, m.NextMaintenanceDate)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
