package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

// ErrUnrecognizedImport is returned when an import file matches neither the
// native snapshot shape nor the known legacy backup shape. Nothing is applied.
var ErrUnrecognizedImport = errors.New("unrecognized import file format")

type exchangeService struct {
	tx        repository.Tx
	snapshots repository.SnapshotRepository
}

func NewExchangeService(tx repository.Tx, snapshots repository.SnapshotRepository) ExchangeService {
	return &exchangeService{tx: tx, snapshots: snapshots}
}

func (s *exchangeService) Export(ctx context.Context) (*persist.Snapshot, error) {
	var snap *persist.Snapshot
	var err error
	s.tx.View(func() {
		snap, err = s.snapshots.Export(ctx)
	})
	return snap, err
}

func (s *exchangeService) Import(ctx context.Context, data []byte) (*ImportSummary, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
	}

	native, legacy := detectImportFormat(raw)
	switch {
	case native:
		return s.importNative(ctx, data)
	case legacy:
		return s.importLegacy(ctx, raw)
	default:
		return nil, ErrUnrecognizedImport
	}
}

func (s *exchangeService) importNative(ctx context.Context, data []byte) (*ImportSummary, error) {
	snap := persist.Default()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
	}
	err := s.tx.Atomic(func() error {
		return s.snapshots.Import(ctx, snap)
	})
	if err != nil {
		return nil, err
	}
	return &ImportSummary{
		Format:    "native",
		Vehicles:  len(snap.Vehicles),
		Customers: len(snap.Customers),
		Rentals:   len(snap.Rentals),
	}, nil
}

func (s *exchangeService) importLegacy(ctx context.Context, raw map[string]json.RawMessage) (*ImportSummary, error) {
	var summary *ImportSummary
	err := s.tx.Atomic(func() error {
		current, err := s.snapshots.Export(ctx)
		if err != nil {
			return err
		}
		snap, sum, err := convertLegacy(raw, current)
		if err != nil {
			return err
		}
		if err := s.snapshots.Import(ctx, snap); err != nil {
			return err
		}
		summary = sum
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// detectImportFormat inspects the parsed top-level document. Both formats may
// carry a "vehicles" key, so the decision is made on the element shape: native
// vehicles carry status/insuranceDate, legacy ones a split brand/model.
func detectImportFormat(raw map[string]json.RawMessage) (native, legacy bool) {
	if keys := elementKeys(raw["vehicles"]); keys != nil {
		if keys["status"] || keys["insuranceDate"] {
			return true, false
		}
		if keys["model"] || keys["insurance"] || keys["gorseller"] {
			return false, true
		}
	}
	if keys := elementKeys(raw["rentals"]); keys != nil {
		if keys["vehiclePlate"] || keys["customerId"] {
			return true, false
		}
		if keys["customer"] || keys["rate"] || keys["per"] {
			return false, true
		}
	}
	if _, ok := raw["readNotifications"]; ok {
		return true, false
	}
	if _, ok := raw["theme"]; ok {
		return true, false
	}
	if _, ok := raw["maintenance"]; ok {
		return false, true
	}
	return false, false
}

// elementKeys returns the key set of the first element of a JSON array, or
// nil when the value is absent, not an array, or empty.
func elementKeys(raw json.RawMessage) map[string]bool {
	if raw == nil {
		return nil
	}
	var arr []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) == 0 {
		return nil
	}
	keys := make(map[string]bool, len(arr[0]))
	for k := range arr[0] {
		keys[k] = true
	}
	return keys
}

type legacyVehicle struct {
	Plate      string              `json:"plate"`
	Brand      string              `json:"brand"`
	Model      string              `json:"model"`
	Km         int                 `json:"km"`
	Insurance  string              `json:"insurance"`
	Inspection string              `json:"inspection"`
	Files      *legacyVehicleFiles `json:"gorseller"`
}

type legacyVehicleFiles struct {
	Insurance  string `json:"sigorta"`
	Inspection string `json:"muayene"`
	License    string `json:"ruhsat"`
}

type legacyRental struct {
	Plate     string  `json:"plate"`
	Customer  string  `json:"customer"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	StartKm   int     `json:"startKm"`
	EndKm     int     `json:"endKm"`
	Rate      float64 `json:"rate"`
	Per       string  `json:"per"`
	Contract  string  `json:"contract"`
	Invoice   string  `json:"invoice"`
}

type legacyMaintenance struct {
	Plate string  `json:"plate"`
	Date  string  `json:"date"`
	Km    int     `json:"km"`
	Type  string  `json:"type"`
	Cost  float64 `json:"cost"`
	Note  string  `json:"note"`
}

// convertLegacy maps a legacy backup onto the current snapshot. Sections
// absent from the file keep their current contents. Any parse failure aborts
// the whole conversion; a legacy import is never partially applied.
func convertLegacy(raw map[string]json.RawMessage, current *persist.Snapshot) (*persist.Snapshot, *ImportSummary, error) {
	snap := *current
	summary := &ImportSummary{Format: "legacy"}

	seq := maxSnapshotID(current)
	nextID := func() int64 {
		seq++
		return seq
	}

	var legacyRentals []legacyRental
	if section, ok := raw["rentals"]; ok {
		if err := json.Unmarshal(section, &legacyRentals); err != nil {
			return nil, nil, fmt.Errorf("invalid legacy rentals section: %w", err)
		}
	}

	// Customers are carried over and extended: every rental naming a customer
	// not yet known gets exactly one fabricated record.
	customers := append([]domain.Customer(nil), current.Customers...)
	findCustomer := func(name string) *domain.Customer {
		for i := range customers {
			if strings.EqualFold(customers[i].Name, name) {
				return &customers[i]
			}
		}
		return nil
	}
	for _, lr := range legacyRentals {
		name := strings.TrimSpace(lr.Customer)
		if name == "" || findCustomer(name) != nil {
			continue
		}
		customers = append(customers, domain.Customer{ID: nextID(), Name: name})
		summary.Customers++
	}
	snap.Customers = customers

	if section, ok := raw["vehicles"]; ok {
		var legacyVehicles []legacyVehicle
		if err := json.Unmarshal(section, &legacyVehicles); err != nil {
			return nil, nil, fmt.Errorf("invalid legacy vehicles section: %w", err)
		}
		vehicles := make([]domain.Vehicle, 0, len(legacyVehicles))
		for _, lv := range legacyVehicles {
			v := domain.Vehicle{
				Plate:          lv.Plate,
				Brand:          strings.TrimSpace(lv.Brand + " " + lv.Model),
				Km:             lv.Km,
				Status:         domain.VehicleStatusAvailable,
				InsuranceDate:  lv.Insurance,
				InspectionDate: lv.Inspection,
			}
			if lv.Files != nil {
				v.InsuranceFile = baseFileName(lv.Files.Insurance)
				v.InspectionFile = baseFileName(lv.Files.Inspection)
				v.LicenseFile = baseFileName(lv.Files.License)
			}
			vehicles = append(vehicles, v)
		}
		snap.Vehicles = vehicles
		summary.Vehicles = len(vehicles)
	}

	if len(legacyRentals) > 0 {
		rentals := make([]domain.Rental, 0, len(legacyRentals))
		for _, lr := range legacyRentals {
			customer := findCustomer(strings.TrimSpace(lr.Customer))
			if customer == nil {
				continue
			}
			r := domain.Rental{
				ID:           nextID(),
				VehiclePlate: lr.Plate,
				CustomerID:   customer.ID,
				StartDate:    lr.StartDate,
				StartKm:      lr.StartKm,
				Price:        lr.Rate,
				PriceType:    domain.PriceTypeDaily,
				ContractFile: baseFileName(lr.Contract),
				InvoiceFile:  baseFileName(lr.Invoice),
				Status:       domain.RentalStatusActive,
			}
			if lr.Per == "Aylık" {
				r.PriceType = domain.PriceTypeMonthly
			}
			if lr.EndDate != "" {
				end := lr.EndDate
				endKm := lr.EndKm
				r.EndDate = &end
				r.EndKm = &endKm
				r.Status = domain.RentalStatusCompleted
			}
			rentals = append(rentals, r)

			// Restamp the owning vehicle so status stays consistent with
			// its active rental.
			if r.Status == domain.RentalStatusActive {
				for i := range snap.Vehicles {
					if snap.Vehicles[i].Plate == r.VehiclePlate {
						snap.Vehicles[i].Status = domain.VehicleStatusRented
						snap.Vehicles[i].RentedBy = &domain.RenterInfo{Name: customer.Name, Phone: customer.Phone}
						snap.Vehicles[i].ActiveRentalID = r.ID
						break
					}
				}
			}
		}
		snap.Rentals = rentals
		summary.Rentals = len(rentals)
	}

	if section, ok := raw["maintenance"]; ok {
		var legacyRecords []legacyMaintenance
		if err := json.Unmarshal(section, &legacyRecords); err != nil {
			return nil, nil, fmt.Errorf("invalid legacy maintenance section: %w", err)
		}
		records := make([]domain.Maintenance, 0, len(legacyRecords))
		for _, lm := range legacyRecords {
			nextDate, err := datex.NextMaintenanceDate(lm.Date)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid legacy maintenance date: %w", err)
			}
			kind := lm.Type
			if kind == "" {
				kind = "Genel Bakım"
			}
			records = append(records, domain.Maintenance{
				ID:                  nextID(),
				VehiclePlate:        lm.Plate,
				MaintenanceDate:     lm.Date,
				MaintenanceKm:       lm.Km,
				Type:                kind,
				Cost:                lm.Cost,
				Description:         lm.Note,
				NextMaintenanceKm:   lm.Km + domain.NextMaintenanceKmInterval,
				NextMaintenanceDate: nextDate,
			})
		}
		snap.Maintenance = records
	}

	if section, ok := raw["reservations"]; ok {
		var reservations []domain.Reservation
		if err := json.Unmarshal(section, &reservations); err != nil {
			return nil, nil, fmt.Errorf("invalid legacy reservations section: %w", err)
		}
		snap.Reservations = reservations
	}

	if section, ok := raw["settings"]; ok {
		settings := domain.DefaultSettings()
		if err := json.Unmarshal(section, &settings); err != nil {
			return nil, nil, fmt.Errorf("invalid legacy settings section: %w", err)
		}
		snap.Settings = settings
	}

	return &snap, summary, nil
}

// baseFileName strips directory components from a legacy file path; backups
// written on Windows use backslashes.
func baseFileName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}

func maxSnapshotID(s *persist.Snapshot) int64 {
	var max int64
	for _, c := range s.Customers {
		if c.ID > max {
			max = c.ID
		}
	}
	for _, r := range s.Rentals {
		if r.ID > max {
			max = r.ID
		}
	}
	for _, r := range s.Reservations {
		if r.ID > max {
			max = r.ID
		}
	}
	for _, m := range s.Maintenance {
		if m.ID > max {
			max = m.ID
		}
	}
	return max
}
