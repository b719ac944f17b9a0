package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

// Store is the single root object owning all entity collections and the
// persisted preference state. Repositories are views over one shared data
// block guarded by a store-wide RW mutex; they do not lock themselves, so
// every caller must go through Atomic or View.
type Store struct {
	d *data

	repository.VehicleRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.ReservationRepository
	repository.MaintenanceRepository
	repository.ActivityRepository
}

type data struct {
	mu      sync.RWMutex
	snap    persist.Snapshot
	seq     int64
	gateway persist.Gateway
}

// NewStore loads the persisted snapshot (falling back to defaults when none
// exists or it cannot be read) and builds the repositories over it.
func NewStore(gw persist.Gateway) *Store {
	snap, ok, err := gw.LoadSnapshot()
	if err != nil {
		logger.Error("Failed to load snapshot, starting with defaults", "error", err)
	}
	if !ok || err != nil {
		snap = persist.Default()
	}
	d := &data{snap: *snap, gateway: gw}
	d.seq = maxEntityID(&d.snap)
	return &Store{
		d:                     d,
		VehicleRepository:     &vehicleRepository{d: d},
		CustomerRepository:    &customerRepository{d: d},
		RentalRepository:      &rentalRepository{d: d},
		ReservationRepository: &reservationRepository{d: d},
		MaintenanceRepository: &maintenanceRepository{d: d},
		ActivityRepository:    &activityRepository{d: d},
	}
}

// Atomic runs a transition operation under the write lock and writes the
// snapshot through on success. A save failure is logged and swallowed; the
// store keeps operating in memory only.
func (s *Store) Atomic(fn func() error) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := fn(); err != nil {
		return err
	}
	s.d.persistLocked()
	return nil
}

// View runs fn under the read lock.
func (s *Store) View(fn func()) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	fn()
}

// Persist forces a snapshot save outside a transition, e.g. the periodic
// checkpoint job or shutdown.
func (s *Store) Persist() {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	s.d.persistLocked()
}

// Export returns a copy of the full store state.
func (s *Store) Export(_ context.Context) (*persist.Snapshot, error) {
	out := s.d.snap
	out.Vehicles = slices.Clone(s.d.snap.Vehicles)
	out.Customers = slices.Clone(s.d.snap.Customers)
	out.Rentals = slices.Clone(s.d.snap.Rentals)
	out.Reservations = slices.Clone(s.d.snap.Reservations)
	out.Maintenance = slices.Clone(s.d.snap.Maintenance)
	out.Activities = slices.Clone(s.d.snap.Activities)
	out.ReadNotifications = slices.Clone(s.d.snap.ReadNotifications)
	return &out, nil
}

// Import replaces the whole store state with the given snapshot and reseeds
// the id allocator past the highest imported id.
func (s *Store) Import(_ context.Context, snap *persist.Snapshot) error {
	s.d.snap = *snap
	if max := maxEntityID(&s.d.snap); max > s.d.seq {
		s.d.seq = max
	}
	return nil
}

func (d *data) persistLocked() {
	if err := d.gateway.SaveSnapshot(&d.snap); err != nil {
		logger.Error("Failed to persist snapshot, continuing in memory", "error", err)
	}
}

// nextID hands out monotonically increasing ids, seeded past the highest id
// found in the loaded snapshot so restarts and imports cannot collide.
func (d *data) nextID() int64 {
	d.seq++
	return d.seq
}

func maxEntityID(s *persist.Snapshot) int64 {
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
