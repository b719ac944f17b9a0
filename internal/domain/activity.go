package domain

import "time"

// ActivityLogLimit bounds the activity store to the most recent entries.
const ActivityLogLimit = 10

// Activity is a short-lived log entry shown on the dashboard and in the
// notification feed. Message may contain inline emphasis markup.
type Activity struct {
	Icon    string    `json:"icon"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
