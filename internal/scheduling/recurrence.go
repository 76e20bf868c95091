package scheduling

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

var errNegativeCount = errors.New("count must not be negative")

// GenerateRecurringDates returns count dates starting at startDate, spaced by the
// pattern's fixed interval. "monthly" is 28 days and drifts from calendar months.
func GenerateRecurringDates(startDate time.Time, pattern domain.RecurrencePattern, count int) ([]time.Time, error) {
	days, ok := pattern.IntervalDays()
	if !ok {
		return nil, invalid("recurrence pattern", string(pattern), ErrUnknownPattern)
	}
	if count < 0 {
		return nil, invalid("count", strconv.Itoa(count), errNegativeCount)
	}

	start := dateOnly(startDate)
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, start.AddDate(0, 0, i*days))
	}
	return dates, nil
}

// CheckRecurringAvailability evaluates every date independently for a booking at
// startTime lasting durationMinutes. Checks run in order and the first failing one
// sets the reason: weekly availability, then time off, then conflicts with that
// date's bookings. Unavailable dates are regular results; callers skip them.
func CheckRecurringAvailability(
	dates []time.Time,
	startTime types.TimeString,
	barberID int64,
	durationMinutes int,
	rules []*domain.BarberAvailability,
	timeOff []*domain.BarberTimeOff,
	bookings []*domain.Booking,
) ([]domain.DateAvailabilityResult, error) {
	candidate, err := slotInterval(startTime, durationMinutes)
	if err != nil {
		return nil, err
	}

	results := make([]domain.DateAvailabilityResult, 0, len(dates))
	for _, date := range dates {
		result := domain.DateAvailabilityResult{
			Date:       date,
			DateString: date.Format(domain.DateFormat),
		}

		switch {
		case !worksOnWeekday(barberID, date.Weekday(), rules):
			result.Reason = domain.ReasonNotWorkingDay
		case isOnTimeOff(barberID, date, timeOff):
			result.Reason = domain.ReasonTimeOff
		default:
			booked, err := overlapsAny(candidate, barberID, BookingsOnDate(bookings, date))
			if err != nil {
				return nil, err
			}
			if booked {
				result.Reason = domain.ReasonSlotBooked
			} else {
				result.Available = true
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// RestrictToWorkingSlots marks an available result unavailable when startTime is not
// one of the slots GetAvailableTimeSlotsForBarber generates for that date, i.e. the
// occurrence does not fit inside a single weekly block or is off the slot grid.
// Results are updated in place and returned.
func RestrictToWorkingSlots(
	results []domain.DateAvailabilityResult,
	startTime types.TimeString,
	barberID int64,
	durationMinutes int,
	rules []*domain.BarberAvailability,
	bookings []*domain.Booking,
) ([]domain.DateAvailabilityResult, error) {
	for i := range results {
		if !results[i].Available {
			continue
		}

		slots, err := GetAvailableTimeSlotsForBarber(barberID, results[i].Date, durationMinutes, rules, BookingsOnDate(bookings, results[i].Date))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(slots, startTime) {
			results[i].Available = false
			results[i].Reason = domain.ReasonOutsideHours
		}
	}
	return results, nil
}

// AvailableDates returns the dates of the available results, in order
func AvailableDates(results []domain.DateAvailabilityResult) []time.Time {
	dates := make([]time.Time, 0, len(results))
	for _, r := range results {
		if r.Available {
			dates = append(dates, r.Date)
		}
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
