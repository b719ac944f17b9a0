package domain

type VehicleStatus string

const (
	VehicleStatusAvailable     VehicleStatus = "Müsait"
	VehicleStatusRented        VehicleStatus = "Kirada"
	VehicleStatusInMaintenance VehicleStatus = "Bakımda"
)

// RenterInfo is the customer snapshot stamped onto a vehicle while it is rented.
// It is written by StartRental and cleared by CompleteRental; it never drifts
// because vehicles are only mutated through those operations.
type RenterInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Vehicle is identified by its registration plate.
type Vehicle struct {
	Plate          string        `json:"plate"`
	Brand          string        `json:"brand"`
	Km             int           `json:"km"`
	Status         VehicleStatus `json:"status"`
	InsuranceDate  string        `json:"insuranceDate,omitempty"`  // yyyy-mm-dd
	InspectionDate string        `json:"inspectionDate,omitempty"` // yyyy-mm-dd
	InsuranceFile  string        `json:"insuranceFile,omitempty"`  // storage key
	InspectionFile string        `json:"inspectionFile,omitempty"` // storage key
	LicenseFile    string        `json:"licenseFile,omitempty"`    // storage key
	RentedBy       *RenterInfo   `json:"rentedBy,omitempty"`
	ActiveRentalID int64         `json:"activeRentalId,omitempty"`
}
