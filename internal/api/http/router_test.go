package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/storage"
)

type nullGateway struct{}

func (nullGateway) SaveSnapshot(*persist.Snapshot) error          { return nil }
func (nullGateway) LoadSnapshot() (*persist.Snapshot, bool, error) { return nil, false, nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewStore(nullGateway{})

	docs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	router := NewRouter(Services{
		Vehicles:      service.NewVehicleService(store, store.VehicleRepository, store.ActivityRepository, store),
		Customers:     service.NewCustomerService(store, store.CustomerRepository, store.RentalRepository, store.ActivityRepository),
		Rentals:       service.NewRentalService(store, store.RentalRepository, store.VehicleRepository, store.CustomerRepository, store.ActivityRepository),
		Reservations:  service.NewReservationService(store, store.ReservationRepository, store.VehicleRepository, store.CustomerRepository),
		Maintenance:   service.NewMaintenanceService(store, store.MaintenanceRepository, store.VehicleRepository, store.ActivityRepository),
		Activities:    service.NewActivityService(store, store.ActivityRepository),
		Dashboard:     service.NewDashboardService(store, store.VehicleRepository, store.RentalRepository, store.MaintenanceRepository, store),
		Notifications: service.NewNotificationService(store, store.VehicleRepository, store.MaintenanceRepository, store.ActivityRepository, store),
		Settings:      service.NewSettingsService(store, store),
		Exchange:      service.NewExchangeService(store, store),
		Documents:     docs,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestVehicleEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/vehicles", map[string]any{
		"plate": "34 ABC 123",
		"brand": "Renault Clio",
		"km":    45000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.Vehicle](t, resp)
	assert.Equal(t, domain.VehicleStatusAvailable, created.Status)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/vehicles/"+url.PathEscape("34 ABC 123"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[domain.Vehicle](t, resp)
	assert.Equal(t, "Renault Clio", got.Brand)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/vehicles/"+url.PathEscape("99 ZZZ 999"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Missing plate fails validation.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/vehicles", map[string]any{"brand": "Fiat"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestRentalLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/vehicles", map[string]any{"plate": "34 ABC 123", "brand": "Renault Clio"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/customers", map[string]any{"name": "Ahmet Yılmaz", "phone": "0555 111 22 33"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	customer := decodeBody[domain.Customer](t, resp)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals", map[string]any{
		"vehiclePlate": "34 ABC 123",
		"customerId":   customer.ID,
		"startDate":    "2024-05-10",
		"startKm":      45000,
		"price":        1000,
		"priceType":    "daily",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rental := decodeBody[domain.Rental](t, resp)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)

	// Renting the same vehicle again conflicts.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals", map[string]any{
		"vehiclePlate": "34 ABC 123",
		"customerId":   customer.ID,
		"startDate":    "2024-05-11",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals/1/checkin", map[string]any{
		"endDate": "2024-05-13",
		"endKm":   45400,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	completed := decodeBody[domain.Rental](t, resp)
	require.NotNil(t, completed.TotalCost)
	assert.Equal(t, 3000.0, *completed.TotalCost)

	// A second check-in conflicts.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals/1/checkin", map[string]any{
		"endDate": "2024-05-14",
		"endKm":   45500,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestImportEndpointRejectsGarbage(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/import", bytes.NewBufferString("garbage"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPreferencesEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPut, server.URL+"/api/v1/preferences/theme", map[string]any{"theme": "dark"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/preferences/theme", map[string]any{"theme": "sepia"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	prefs := decodeBody[service.Preferences](t, resp)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
