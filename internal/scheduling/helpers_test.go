package scheduling

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

const testBarberID = int64(7)

// 2024-01-01 is a Monday
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func block(day time.Weekday, start, end string) *domain.BarberAvailability {
	return &domain.BarberAvailability{
		BarberID:    testBarberID,
		DayOfWeek:   int(day),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: true,
	}
}

func booking(date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BarberID:    testBarberID,
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func timeOff(start, end time.Time) *domain.BarberTimeOff {
	return &domain.BarberTimeOff{BarberID: testBarberID, StartDate: start, EndDate: end}
}

func slotRange(from, to string) []types.TimeString {
	start := types.MustTimeString(from)
	end := types.MustTimeString(to)
	var slots []types.TimeString
	for s := start; !s.IsAfter(end); {
		slots = append(slots, s)
		next, err := s.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		s = next
	}
	return slots
}
