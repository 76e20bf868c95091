package create_recurring_bookings

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

func validateRequest(req *Request, maxOccurrences int) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 || req.ServiceID <= 0 {
		return fmt.Errorf("%w: barberID and serviceID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if _, ok := req.Pattern.IntervalDays(); !ok {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidInput, req.Pattern)
	}

	if req.Occurrences < 1 || req.Occurrences > maxOccurrences {
		return fmt.Errorf("%w: occurrences must be between 1 and %d", ErrInvalidInput, maxOccurrences)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func validateStart(date time.Time, start types.TimeString, now time.Time, bufferMinutes int) error {
	if len(scheduling.FilterPastSlots([]types.TimeString{start}, date, now, bufferMinutes)) == 0 {
		return fmt.Errorf("%w: %s %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat), start)
	}
	return nil
}
