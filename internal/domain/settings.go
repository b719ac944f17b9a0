package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings are the persisted per-field UI preference toggles.
type Settings struct {
	DashboardMetricTotal       bool `json:"db_metric_total"`
	DashboardMetricRented      bool `json:"db_metric_rented"`
	DashboardMetricMaintenance bool `json:"db_metric_maintenance"`
	DashboardMetricIncome      bool `json:"db_metric_income"`
	ReminderDays               int  `json:"reminder_days"`
	VehicleBtnRent             bool `json:"vehicle_btn_rent"`
	VehicleBtnCheckin          bool `json:"vehicle_btn_checkin"`
	VehicleBtnEdit             bool `json:"vehicle_btn_edit"`
	NotifTypeInsurance         bool `json:"notif_type_insurance"`
	NotifTypeInspection        bool `json:"notif_type_inspection"`
	NotifTypeActivity          bool `json:"notif_type_activity"`
}

func DefaultSettings() Settings {
	return Settings{
		DashboardMetricTotal:       true,
		DashboardMetricRented:      true,
		DashboardMetricMaintenance: true,
		DashboardMetricIncome:      true,
		ReminderDays:               30,
		VehicleBtnRent:             true,
		VehicleBtnCheckin:          true,
		VehicleBtnEdit:             true,
		NotifTypeInsurance:         true,
		NotifTypeInspection:        true,
		NotifTypeActivity:          true,
	}
}
