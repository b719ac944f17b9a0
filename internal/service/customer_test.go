package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
)

func newCustomerService(store *memory.Store) *customerService {
	svc := NewCustomerService(store, store.CustomerRepository, store.RentalRepository, store.ActivityRepository).(*customerService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newCustomerService(store)

	customer, err := svc.CreateCustomer(ctx, &domain.Customer{Name: "Ahmet Yılmaz", Phone: "0555 111 22 33"})
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)

	store.View(func() {
		activities, err := store.ActivityRepository.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, activities)
		assert.Equal(t, "fa-user-plus", activities[0].Icon)
		assert.Equal(t, "<strong>Ahmet Yılmaz</strong> adında yeni müşteri kaydedildi.", activities[0].Message)
	})
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := newCustomerService(newTestStore())
	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{Phone: "0555"})
	assert.Error(t, err)
}

func TestListCustomersQuery(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newCustomerService(store)

	seedCustomer(t, store, domain.Customer{Name: "Ahmet Yılmaz", Phone: "0555 111 22 33", NationalID: "12345678901"})
	seedCustomer(t, store, domain.Customer{Name: "Ayşe Demir", Phone: "0532 444 55 66", NationalID: "98765432109"})

	byName, err := svc.ListCustomers(ctx, "ayşe")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ayşe Demir", byName[0].Name)

	byPhone, err := svc.ListCustomers(ctx, "0555")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Ahmet Yılmaz", byPhone[0].Name)

	none, err := svc.ListCustomers(ctx, "mehmet")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRentalHistoryIsDerivedFromRentals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	customerSvc := newCustomerService(store)
	rentalSvc := newRentalService(store)

	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123"})
	seedVehicle(t, store, domain.Vehicle{Plate: "06 XYZ 42"})
	customer := seedCustomer(t, store, domain.Customer{Name: "Ahmet Yılmaz"})

	first, err := rentalSvc.StartRental(ctx, StartRentalInput{VehiclePlate: "34 ABC 123", CustomerID: customer.ID, StartDate: "2024-04-01", Price: 1000})
	require.NoError(t, err)
	_, err = rentalSvc.CompleteRental(ctx, first.ID, "2024-04-05", 100)
	require.NoError(t, err)

	_, err = rentalSvc.StartRental(ctx, StartRentalInput{VehiclePlate: "06 XYZ 42", CustomerID: customer.ID, StartDate: "2024-05-01", Price: 1500})
	require.NoError(t, err)

	history, err := customerSvc.RentalHistory(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Most recent rental first, mirroring store order.
	assert.Equal(t, "06 XYZ 42", history[0].Plate)
	assert.Equal(t, "active", history[0].Status)
	assert.Equal(t, "34 ABC 123", history[1].Plate)
	assert.Equal(t, "completed", history[1].Status)
}

func TestRentalHistoryUnknownCustomer(t *testing.T) {
	svc := newCustomerService(newTestStore())
	_, err := svc.RentalHistory(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
