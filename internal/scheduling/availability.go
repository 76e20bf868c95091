package scheduling

import (
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// IsBarberAvailableOnDate returns true when the barber has at least one available
// weekly block on the date's weekday and no time off covering the date.
func IsBarberAvailableOnDate(
	barberID int64,
	date time.Time,
	rules []*domain.BarberAvailability,
	timeOff []*domain.BarberTimeOff,
) bool {
	return worksOnWeekday(barberID, date.Weekday(), rules) && !isOnTimeOff(barberID, date, timeOff)
}

func worksOnWeekday(barberID int64, weekday time.Weekday, rules []*domain.BarberAvailability) bool {
	for _, rule := range rules {
		if rule != nil && rule.BarberID == barberID && rule.DayOfWeek == int(weekday) && rule.IsAvailable {
			return true
		}
	}
	return false
}

func isOnTimeOff(barberID int64, date time.Time, timeOff []*domain.BarberTimeOff) bool {
	for _, off := range timeOff {
		if off != nil && off.BarberID == barberID && off.Covers(date) {
			return true
		}
	}
	return false
}

// GetAvailableTimeSlotsForBarber returns the sorted start times on date at which a
// service of durationMinutes fits inside one of the barber's weekly blocks without
// overlapping a non-cancelled booking of that date.
//
// Candidates start at each block's start and advance in 15-minute steps while
// start+duration <= block end. Blocks are sliced independently, which is how breaks
// are modelled. Time off is not checked here; gate the date with
// IsBarberAvailableOnDate first.
func GetAvailableTimeSlotsForBarber(
	barberID int64,
	date time.Time,
	durationMinutes int,
	rules []*domain.BarberAvailability,
	bookings []*domain.Booking,
) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, invalid("duration", strconv.Itoa(durationMinutes), errNonPositiveDuration)
	}

	dayBookings := BookingsOnDate(bookings, date)
	weekday := int(date.Weekday())

	starts := make(map[int]struct{})
	for _, rule := range rules {
		if rule == nil || rule.BarberID != barberID || rule.DayOfWeek != weekday || !rule.IsAvailable {
			continue
		}

		block, err := blockInterval(rule.StartTime, rule.EndTime)
		if err != nil {
			return nil, err
		}

		for s := block.start; s+durationMinutes <= block.end; s += domain.SlotStepMinutes {
			booked, err := overlapsAny(interval{start: s, end: s + durationMinutes}, barberID, dayBookings)
			if err != nil {
				return nil, err
			}
			if !booked {
				starts[s] = struct{}{}
			}
		}
	}

	return sortedSlots(starts)
}

func sortedSlots(starts map[int]struct{}) ([]types.TimeString, error) {
	minutes := make([]int, 0, len(starts))
	for m := range starts {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	slots := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

// FilterPastSlots hides slots the customer can no longer book. For a date before
// today every slot is dropped; for today only slots starting at or after
// now+bufferMinutes are kept; future dates are returned unchanged.
// now must already be in shop-local time.
func FilterPastSlots(slots []types.TimeString, date time.Time, now time.Time, bufferMinutes int) []types.TimeString {
	day := date.Format(domain.DateFormat)
	today := now.Format(domain.DateFormat)

	switch {
	case day < today:
		return []types.TimeString{}
	case day > today:
		return slots
	}

	threshold := now.Hour()*60 + now.Minute() + bufferMinutes

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		m, err := slot.Minutes()
		if err != nil {
			continue
		}
		if m >= threshold {
			result = append(result, slot)
		}
	}
	return result
}
