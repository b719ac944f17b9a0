package datex

import (
	"fmt"
	"math"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

// DateLayout is the yyyy-mm-dd format used by all entity date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd string into a local-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", s)
	}
	return t, nil
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the whole days from today's midnight to the date's
// midnight, rounding up. ok is false when the date is empty or malformed.
func DaysUntil(dateStr string, now time.Time) (days int, ok bool) {
	if dateStr == "" {
		return 0, false
	}
	target, err := ParseDate(dateStr)
	if err != nil {
		return 0, false
	}
	diff := target.Sub(Midnight(now))
	return int(math.Ceil(diff.Hours() / 24)), true
}

// RentedDays computes the billable day count of a rental:
// max(1, ceil((end - start) / 1 day)). A same-day return still bills one day.
func RentedDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalCost converts a billable day count into a total cost. Monthly pricing
// uses a fixed 30-day month and allows fractional month counts; there is no
// calendar-month arithmetic.
func RentalCost(days int, price float64, priceType domain.PriceType) float64 {
	if priceType == domain.PriceTypeMonthly {
		return float64(days) / 30 * price
	}
	return float64(days) * price
}

// UrgencyFor buckets a days-until value. Overdue dates get their own bucket
// instead of being dropped from the feed.
func UrgencyFor(days int) domain.Urgency {
	switch {
	case days < 0:
		return domain.UrgencyOverdue
	case days <= 7:
		return domain.UrgencyUrgent
	case days <= 15:
		return domain.UrgencyWarning
	default:
		return domain.UrgencyNormal
	}
}

// ReminderText renders the remaining-days label shown next to a reminder.
func ReminderText(days int) string {
	switch {
	case days < 0:
		return "Geçti!"
	case days == 0:
		return "Bugün Son Gün!"
	default:
		return fmt.Sprintf("Son %d gün", days)
	}
}

// InMonth reports whether a yyyy-mm-dd date falls in the given local calendar
// month and year. Empty or malformed dates never match.
func InMonth(dateStr string, month time.Month, year int) bool {
	t, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	return t.Month() == month && t.Year() == year
}

// TimeAgo buckets elapsed time into the largest applicable unit using fixed
// 365-day years and 30-day months, matching the console's display strings.
func TimeAgo(t, now time.Time) string {
	seconds := now.Sub(t).Seconds()
	if interval := seconds / 31536000; interval > 1 {
		return fmt.Sprintf("%d yıl önce", int(interval))
	}
	if interval := seconds / 2592000; interval > 1 {
		return fmt.Sprintf("%d ay önce", int(interval))
	}
	if interval := seconds / 86400; interval > 1 {
		return fmt.Sprintf("%d gün önce", int(interval))
	}
	if interval := seconds / 3600; interval > 1 {
		return fmt.Sprintf("%d saat önce", int(interval))
	}
	if interval := seconds / 60; interval > 1 {
		return fmt.Sprintf("%d dakika önce", int(interval))
	}
	return "az önce"
}

// NextMaintenanceDate derives the default next service date: one year after
// the service date.
func NextMaintenanceDate(serviceDate string) (string, error) {
	t, err := ParseDate(serviceDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(domain.NextMaintenanceYearOffset, 0, 0).Format(DateLayout), nil
}
