package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
)

type nullGateway struct{}

func (nullGateway) SaveSnapshot(*persist.Snapshot) error          { return nil }
func (nullGateway) LoadSnapshot() (*persist.Snapshot, bool, error) { return nil, false, nil }

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

func newTestStore() *memory.Store {
	return memory.NewStore(nullGateway{})
}

func seedVehicle(t *testing.T, store *memory.Store, v domain.Vehicle) {
	t.Helper()
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	err := store.Atomic(func() error {
		return store.VehicleRepository.Create(context.Background(), &v)
	})
	require.NoError(t, err)
}

func seedCustomer(t *testing.T, store *memory.Store, c domain.Customer) domain.Customer {
	t.Helper()
	err := store.Atomic(func() error {
		return store.CustomerRepository.Create(context.Background(), &c)
	})
	require.NoError(t, err)
	return c
}
