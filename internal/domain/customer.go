package domain

type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NationalID    string `json:"tc"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseDate   string `json:"licenseDate"` // yyyy-mm-dd
	IDFile        string `json:"idFile,omitempty"`
	LicenseFile   string `json:"licenseFile,omitempty"`
}

// RentalSummary is a display projection of a customer's rental history.
// It is derived from the rental store on demand, never stored on the customer.
type RentalSummary struct {
	Plate  string `json:"plate"`
	Date   string `json:"date"`
	Status string `json:"status"`
}
