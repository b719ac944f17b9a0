package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
)

// fakeGateway records saves in memory.
type fakeGateway struct {
	saved   *persist.Snapshot
	saves   int
	initial *persist.Snapshot
	loadErr error
}

func (g *fakeGateway) SaveSnapshot(s *persist.Snapshot) error {
	copied := *s
	g.saved = &copied
	g.saves++
	return nil
}

func (g *fakeGateway) LoadSnapshot() (*persist.Snapshot, bool, error) {
	if g.loadErr != nil {
		return nil, false, g.loadErr
	}
	if g.initial == nil {
		return nil, false, nil
	}
	return g.initial, true, nil
}

func TestNewStoreStartsWithDefaults(t *testing.T) {
	store := NewStore(&fakeGateway{})

	store.View(func() {
		theme, err := store.Theme(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeLight, theme)

		settings, err := store.Settings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), settings)
	})
}

func TestNewStoreFallsBackOnLoadError(t *testing.T) {
	store := NewStore(&fakeGateway{loadErr: fmt.Errorf("disk gone")})

	store.View(func() {
		vehicles, err := store.VehicleRepository.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, vehicles)
	})
}

func TestVehicleCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{})

	err := store.Atomic(func() error {
		if err := store.VehicleRepository.Create(ctx, &domain.Vehicle{Plate: "34 ABC 123", Brand: "Renault Clio", Status: domain.VehicleStatusAvailable}); err != nil {
			return err
		}
		return store.VehicleRepository.Create(ctx, &domain.Vehicle{Plate: "06 XYZ 42", Brand: "Fiat Egea", Status: domain.VehicleStatusAvailable})
	})
	require.NoError(t, err)

	store.View(func() {
		vehicles, err := store.VehicleRepository.List(ctx)
		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		// Newest first.
		assert.Equal(t, "06 XYZ 42", vehicles[0].Plate)

		v, err := store.VehicleRepository.GetByPlate(ctx, "34 ABC 123")
		require.NoError(t, err)
		assert.Equal(t, "Renault Clio", v.Brand)

		_, err = store.VehicleRepository.GetByPlate(ctx, "99 ZZZ 999")
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})

	err = store.Atomic(func() error {
		return store.VehicleRepository.Update(ctx, &domain.Vehicle{Plate: "34 ABC 123", Brand: "Renault Clio", Km: 50000, Status: domain.VehicleStatusInMaintenance})
	})
	require.NoError(t, err)

	err = store.Atomic(func() error {
		return store.VehicleRepository.Delete(ctx, "06 XYZ 42")
	})
	require.NoError(t, err)

	store.View(func() {
		vehicles, err := store.VehicleRepository.List(ctx)
		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, domain.VehicleStatusInMaintenance, vehicles[0].Status)
		assert.Equal(t, 50000, vehicles[0].Km)
	})
}

func TestCustomerIDAllocation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{})

	var first, second *domain.Customer
	err := store.Atomic(func() error {
		first = &domain.Customer{Name: "Ahmet Yılmaz"}
		if err := store.CustomerRepository.Create(ctx, first); err != nil {
			return err
		}
		second = &domain.Customer{Name: "Ayşe Demir"}
		return store.CustomerRepository.Create(ctx, second)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestIDAllocationSeededFromSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{initial: &persist.Snapshot{
		Customers: []domain.Customer{{ID: 7, Name: "Ahmet Yılmaz"}},
		Rentals:   []domain.Rental{{ID: 41, VehiclePlate: "34 ABC 123", CustomerID: 7, StartDate: "2024-05-10", Status: domain.RentalStatusActive}},
	}})

	var c domain.Customer
	err := store.Atomic(func() error {
		c = domain.Customer{Name: "Ayşe Demir"}
		return store.CustomerRepository.Create(ctx, &c)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.ID)
}

func TestActivityLogTruncation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{})

	err := store.Atomic(func() error {
		for i := 1; i <= 11; i++ {
			a := domain.Activity{
				Icon:    "fa-car-side",
				Message: fmt.Sprintf("entry %d", i),
				Time:    time.Date(2024, 5, 1, 0, 0, i, 0, time.UTC),
			}
			if err := store.ActivityRepository.Append(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	store.View(func() {
		activities, err := store.ActivityRepository.List(ctx)
		require.NoError(t, err)
		require.Len(t, activities, domain.ActivityLogLimit)
		assert.Equal(t, "entry 11", activities[0].Message)
		assert.Equal(t, "entry 2", activities[9].Message)
	})
}

func TestAtomicPersistsOnSuccessOnly(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	store := NewStore(gw)

	err := store.Atomic(func() error {
		_ = store.VehicleRepository.Create(ctx, &domain.Vehicle{Plate: "34 ABC 123", Status: domain.VehicleStatusAvailable})
		return fmt.Errorf("validation failed")
	})
	assert.Error(t, err)
	assert.Equal(t, 0, gw.saves)

	err = store.Atomic(func() error {
		return store.VehicleRepository.Create(ctx, &domain.Vehicle{Plate: "06 XYZ 42", Status: domain.VehicleStatusAvailable})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.saves)
	require.NotNil(t, gw.saved)
}

func TestMarkNotificationReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{})

	err := store.Atomic(func() error {
		if err := store.MarkNotificationRead(ctx, 100); err != nil {
			return err
		}
		return store.MarkNotificationRead(ctx, 100)
	})
	require.NoError(t, err)

	store.View(func() {
		read, err := store.ReadNotifications(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{100}, read)
	})
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeGateway{})

	err := store.Atomic(func() error {
		return store.CustomerRepository.Create(ctx, &domain.Customer{Name: "Ahmet Yılmaz"})
	})
	require.NoError(t, err)

	var exported *persist.Snapshot
	store.View(func() {
		exported, err = store.Export(ctx)
	})
	require.NoError(t, err)
	require.Len(t, exported.Customers, 1)

	// Mutating the export must not touch the store.
	exported.Customers[0].Name = "changed"
	store.View(func() {
		c, err := store.CustomerRepository.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Ahmet Yılmaz", c.Name)
	})

	err = store.Atomic(func() error {
		return store.Import(ctx, &persist.Snapshot{
			Customers: []domain.Customer{{ID: 10, Name: "Mehmet Kaya"}},
			Theme:     domain.ThemeDark,
			Settings:  domain.DefaultSettings(),
		})
	})
	require.NoError(t, err)

	var c domain.Customer
	err = store.Atomic(func() error {
		c = domain.Customer{Name: "Ali Veli"}
		return store.CustomerRepository.Create(ctx, &c)
	})
	require.NoError(t, err)
	// The allocator never reuses an imported id.
	assert.Equal(t, int64(11), c.ID)
}
