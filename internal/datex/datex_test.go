package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

func TestRentedDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three full days", "2024-05-10", "2024-05-13", 3},
		{"same day bills one day", "2024-05-10", "2024-05-10", 1},
		{"single day", "2024-05-10", "2024-05-11", 1},
		{"across month boundary", "2024-01-30", "2024-02-02", 3},
		{"end before start still bills one day", "2024-05-13", "2024-05-10", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := RentedDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		_, err := RentedDays("10.05.2024", "2024-05-13")
		assert.Error(t, err)
	})
}

func TestRentalCost(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		assert.Equal(t, 3000.0, RentalCost(3, 1000, domain.PriceTypeDaily))
	})
	t.Run("one day minimum", func(t *testing.T) {
		assert.Equal(t, 1000.0, RentalCost(1, 1000, domain.PriceTypeDaily))
	})
	t.Run("monthly uses fixed 30 day months", func(t *testing.T) {
		assert.Equal(t, 30000.0, RentalCost(30, 30000, domain.PriceTypeMonthly))
		assert.Equal(t, 15000.0, RentalCost(15, 30000, domain.PriceTypeMonthly))
		assert.Equal(t, 45000.0, RentalCost(45, 30000, domain.PriceTypeMonthly))
	})
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		date     string
		want     int
		wantOK   bool
	}{
		{"thirty days out", "2024-06-09", 30, true},
		{"today", "2024-05-10", 0, true},
		{"tomorrow", "2024-05-11", 1, true},
		{"yesterday", "2024-05-09", -1, true},
		{"empty", "", 0, false},
		{"malformed", "10/05/2024", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntil(tt.date, now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, days)
			}
		})
	}
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		days int
		want domain.Urgency
	}{
		{-1, domain.UrgencyOverdue},
		{0, domain.UrgencyUrgent},
		{7, domain.UrgencyUrgent},
		{8, domain.UrgencyWarning},
		{15, domain.UrgencyWarning},
		{16, domain.UrgencyNormal},
		{30, domain.UrgencyNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UrgencyFor(tt.days), "days=%d", tt.days)
	}
}

func TestReminderText(t *testing.T) {
	assert.Equal(t, "Geçti!", ReminderText(-3))
	assert.Equal(t, "Bugün Son Gün!", ReminderText(0))
	assert.Equal(t, "Son 5 gün", ReminderText(5))
}

func TestInMonth(t *testing.T) {
	assert.True(t, InMonth("2024-05-13", time.May, 2024))
	assert.False(t, InMonth("2024-06-01", time.May, 2024))
	assert.False(t, InMonth("2023-05-13", time.May, 2024))
	assert.False(t, InMonth("", time.May, 2024))
	assert.False(t, InMonth("not-a-date", time.May, 2024))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "az önce"},
		{"ninety seconds floors to one minute", now.Add(-90 * time.Second), "1 dakika önce"},
		{"minutes", now.Add(-5 * time.Minute), "5 dakika önce"},
		{"hours", now.Add(-3 * time.Hour), "3 saat önce"},
		{"days", now.Add(-72 * time.Hour), "3 gün önce"},
		{"months", now.Add(-75 * 24 * time.Hour), "2 ay önce"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 yıl önce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.t, now))
		})
	}
}

func TestNextMaintenanceDate(t *testing.T) {
	next, err := NextMaintenanceDate("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-10", next)

	_, err = NextMaintenanceDate("invalid")
	assert.Error(t, err)
}
