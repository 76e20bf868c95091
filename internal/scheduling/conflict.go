package scheduling

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// IsSlotBooked reports whether [candidateStart, candidateStart+duration) overlaps
// any non-cancelled booking of the barber. Intervals are half-open, so a slot
// ending at 10:00 does not conflict with a booking starting at 10:00.
//
// Bookings are not filtered by date; pass the bookings of one date only.
func IsSlotBooked(
	candidateStart types.TimeString,
	barberID int64,
	durationMinutes int,
	bookings []*domain.Booking,
) (bool, error) {
	candidate, err := slotInterval(candidateStart, durationMinutes)
	if err != nil {
		return false, err
	}
	return overlapsAny(candidate, barberID, bookings)
}

func overlapsAny(candidate interval, barberID int64, bookings []*domain.Booking) (bool, error) {
	for _, booking := range bookings {
		if booking == nil || booking.BarberID != barberID || !booking.BlocksSlot() {
			continue
		}

		existing, err := bookingInterval(booking)
		if err != nil {
			return false, err
		}

		if candidate.overlaps(existing) {
			return true, nil
		}
	}
	return false, nil
}

func bookingInterval(b *domain.Booking) (interval, error) {
	start, err := toMinutes("booking start time", b.StartTime)
	if err != nil {
		return interval{}, err
	}
	end, err := toMinutes("booking end time", b.EndTime)
	if err != nil {
		return interval{}, err
	}
	return interval{start: start, end: end}, nil
}

// BookingsOnDate returns the bookings whose date equals date
func BookingsOnDate(bookings []*domain.Booking, date time.Time) []*domain.Booking {
	day := date.Format(domain.DateFormat)
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && b.BookingDate.Format(domain.DateFormat) == day {
			result = append(result, b)
		}
	}
	return result
}
