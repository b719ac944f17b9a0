package domain

import "time"

type NotificationType string

const (
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeActivity NotificationType = "activity"
)

type ReminderKind string

const (
	ReminderKindInsurance   ReminderKind = "Sigorta"
	ReminderKindInspection  ReminderKind = "Muayene"
	ReminderKindMaintenance ReminderKind = "Bakım"
)

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyNormal  Urgency = "normal"
)

// Notification is a feed item derived on demand: either a due-date reminder
// or a recent activity. IDs are deterministic for reminders (timestamp plus a
// per-kind offset) so read state survives recomputation.
type Notification struct {
	ID           int64            `json:"id"`
	Type         NotificationType `json:"type"`
	Kind         ReminderKind     `json:"kind,omitempty"`
	Urgency      Urgency          `json:"urgency"`
	Icon         string           `json:"icon"`
	Message      string           `json:"message"`
	Time         time.Time        `json:"time"`
	DaysLeft     int              `json:"daysLeft,omitempty"`
	DaysText     string           `json:"daysText,omitempty"`
	VehiclePlate string           `json:"vehiclePlate,omitempty"`
	Read         bool             `json:"read"`
}

// Reminder is a due-soon item produced by the derivation engine for the
// dashboard list, before it is merged into the notification feed.
type Reminder struct {
	Kind         ReminderKind `json:"type"`
	VehiclePlate string       `json:"vehiclePlate"`
	Date         string       `json:"date"`
	Days         int          `json:"days"`
	Urgency      Urgency      `json:"urgency"`
}
