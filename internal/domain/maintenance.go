package domain

// Next-due defaults applied when a maintenance record is created without
// explicit next-due values.
const (
	NextMaintenanceKmInterval = 15000
	NextMaintenanceYearOffset = 1
)

// Maintenance is a service record for a vehicle. The next-due fields are
// derived once at creation time and stored immutably; they are not recomputed
// when the record is edited.
type Maintenance struct {
	ID                  int64   `json:"id"`
	VehiclePlate        string  `json:"vehiclePlate"`
	MaintenanceDate     string  `json:"maintenanceDate"` // yyyy-mm-dd
	MaintenanceKm       int     `json:"maintenanceKm"`
	Type                string  `json:"type"`
	Cost                float64 `json:"cost"`
	Description         string  `json:"description"`
	NextMaintenanceKm   int     `json:"nextMaintenanceKm"`
	NextMaintenanceDate string  `json:"nextMaintenanceDate"` // yyyy-mm-dd
}
