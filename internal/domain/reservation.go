package domain

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation does not block overlapping rentals; there is no conflict
// detection between reservations and the rental lifecycle.
type Reservation struct {
	ID               int64             `json:"id"`
	VehiclePlate     string            `json:"vehiclePlate"`
	CustomerID       int64             `json:"customerId"`
	StartDate        string            `json:"startDate"` // yyyy-mm-dd
	EndDate          string            `json:"endDate"`   // yyyy-mm-dd
	DeliveryLocation string            `json:"deliveryLocation"`
	Notes            string            `json:"notes,omitempty"`
	Status           ReservationStatus `json:"status"`
}
