package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
)

type PriceType string

const (
	PriceTypeDaily   PriceType = "daily"
	PriceTypeMonthly PriceType = "monthly"
)

// Rental references a vehicle by plate and a customer by id.
// EndDate, EndKm and TotalCost stay nil while the rental is active; all three
// are set exactly once by CompleteRental and never recomputed afterwards.
type Rental struct {
	ID           int64        `json:"id"`
	VehiclePlate string       `json:"vehiclePlate"`
	CustomerID   int64        `json:"customerId"`
	StartDate    string       `json:"startDate"` // yyyy-mm-dd
	EndDate      *string      `json:"endDate"`
	StartKm      int          `json:"startKm"`
	EndKm        *int         `json:"endKm"`
	Price        float64      `json:"price"`
	PriceType    PriceType    `json:"priceType"`
	TotalCost    *float64     `json:"totalCost"`
	ContractFile string       `json:"contractFile,omitempty"`
	InvoiceFile  string       `json:"invoiceFile,omitempty"`
	Status       RentalStatus `json:"status"`
}
