package domain

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// BarberAvailability is a recurring weekly working block.
// DayOfWeek follows time.Weekday: 0 = Sunday ... 6 = Saturday.
// Blocks of one barber on one weekday must not overlap.
type BarberAvailability struct {
	ID          int64
	BarberID    int64
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// BarberTimeOff is an inclusive date range during which the barber does not work
type BarberTimeOff struct {
	ID        int64
	BarberID  int64
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

// Covers reports whether date falls within the range (inclusive on both ends)
func (t *BarberTimeOff) Covers(date time.Time) bool {
	d := date.Format(DateFormat)
	return t.StartDate.Format(DateFormat) <= d && d <= t.EndDate.Format(DateFormat)
}

// DateAvailabilityResult is the verdict for one occurrence of a recurring series
type DateAvailabilityResult struct {
	Date       time.Time
	DateString string
	Available  bool
	Reason     string // empty when Available
}
