package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

func TestGenerateRecurringDates_Weekly(t *testing.T) {
	dates, err := GenerateRecurringDates(monday, domain.PatternWeekly, 4)
	require.NoError(t, err)

	got := make([]string, len(dates))
	for i, d := range dates {
		got[i] = d.Format(domain.DateFormat)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}, got)
}

func TestGenerateRecurringDates_MonthlyIsTwentyEightDays(t *testing.T) {
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	dates, err := GenerateRecurringDates(start, domain.PatternMonthly, 3)
	require.NoError(t, err)
	require.Len(t, dates, 3)

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 28*24*time.Hour, dates[i].Sub(dates[i-1]))
	}
	assert.Equal(t, "2024-02-28", dates[1].Format(domain.DateFormat))
}

func TestGenerateRecurringDates_Patterns(t *testing.T) {
	tests := map[domain.RecurrencePattern]int{
		domain.PatternWeekly:      7,
		domain.PatternBiweekly:    14,
		domain.PatternEvery3Weeks: 21,
		domain.PatternMonthly:     28,
		domain.PatternEvery5Weeks: 35,
		domain.PatternEvery6Weeks: 42,
	}

	for pattern, days := range tests {
		dates, err := GenerateRecurringDates(monday, pattern, 2)
		require.NoError(t, err)
		assert.Equal(t, monday.AddDate(0, 0, days), dates[1], "pattern %s", pattern)
	}
}

func TestGenerateRecurringDates_Validation(t *testing.T) {
	_, err := GenerateRecurringDates(monday, "daily", 3)
	assert.ErrorIs(t, err, ErrUnknownPattern)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateRecurringDates(monday, domain.PatternWeekly, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	dates, err := GenerateRecurringDates(monday, domain.PatternWeekly, 0)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestCheckRecurringAvailability_PartialSuccess(t *testing.T) {
	dates, err := GenerateRecurringDates(monday, domain.PatternWeekly, 4)
	require.NoError(t, err)

	rules := []*domain.BarberAvailability{block(time.Monday, "09:00", "17:00")}
	bookings := []*domain.Booking{booking(dates[2], "10:15", "10:45", domain.StatusConfirmed)}

	results, err := CheckRecurringAvailability(dates, "10:00", testBarberID, 30, rules, nil, bookings)
	require.NoError(t, err)
	require.Len(t, results, 4)

	unavailable := 0
	for i, r := range results {
		assert.Equal(t, dates[i].Format(domain.DateFormat), r.DateString)
		if !r.Available {
			unavailable++
			assert.Equal(t, 2, i)
			assert.Equal(t, domain.ReasonSlotBooked, r.Reason)
		} else {
			assert.Empty(t, r.Reason)
		}
	}
	assert.Equal(t, 1, unavailable)
	assert.Len(t, AvailableDates(results), 3)
}

func TestCheckRecurringAvailability_ReasonOrder(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	nextMonday := monday.AddDate(0, 0, 7)

	rules := []*domain.BarberAvailability{block(time.Monday, "09:00", "17:00")}
	offs := []*domain.BarberTimeOff{timeOff(nextMonday, nextMonday)}
	bookings := []*domain.Booking{
		booking(tuesday, "10:00", "11:00", domain.StatusConfirmed),
		booking(nextMonday, "10:00", "11:00", domain.StatusConfirmed),
	}

	results, err := CheckRecurringAvailability(
		[]time.Time{tuesday, nextMonday, monday},
		"10:00", testBarberID, 60, rules, offs, bookings,
	)
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonNotWorkingDay, results[0].Reason)
	assert.Equal(t, domain.ReasonTimeOff, results[1].Reason, "time off is reported before the conflict")
	assert.True(t, results[2].Available)
}

func TestCheckRecurringAvailability_InvalidTime(t *testing.T) {
	_, err := CheckRecurringAvailability([]time.Time{monday}, "25:00", testBarberID, 30, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRestrictToWorkingSlots(t *testing.T) {
	rules := []*domain.BarberAvailability{
		block(time.Monday, "09:00", "12:00"),
		block(time.Monday, "13:00", "17:00"),
	}
	dates, err := GenerateRecurringDates(monday, domain.PatternWeekly, 2)
	require.NoError(t, err)

	tests := []struct {
		name      string
		start     string
		duration  int
		available bool
	}{
		{name: "inside block", start: "10:00", duration: 30, available: true},
		{name: "before opening", start: "06:00", duration: 30},
		{name: "straddles lunch", start: "11:45", duration: 30},
		{name: "runs past closing", start: "16:45", duration: 30},
		{name: "off the slot grid", start: "10:05", duration: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := types.TimeString(tt.start)
			results, err := CheckRecurringAvailability(dates, start, testBarberID, tt.duration, rules, nil, nil)
			require.NoError(t, err)

			results, err = RestrictToWorkingSlots(results, start, testBarberID, tt.duration, rules, nil)
			require.NoError(t, err)

			for _, r := range results {
				assert.Equal(t, tt.available, r.Available)
				if !tt.available {
					assert.Equal(t, domain.ReasonOutsideHours, r.Reason)
				}
			}
		})
	}
}

func TestRestrictToWorkingSlots_KeepsEarlierReason(t *testing.T) {
	rules := []*domain.BarberAvailability{block(time.Monday, "09:00", "12:00")}
	bookings := []*domain.Booking{booking(monday, "06:00", "06:30", domain.StatusConfirmed)}

	results, err := CheckRecurringAvailability([]time.Time{monday}, "06:00", testBarberID, 30, rules, nil, bookings)
	require.NoError(t, err)
	results, err = RestrictToWorkingSlots(results, "06:00", testBarberID, 30, rules, bookings)
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonSlotBooked, results[0].Reason)
}
