package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingTime отклоняет прошедшие даты и слоты раньше now + буфер
func validateBookingTime(date time.Time, start types.TimeString, now time.Time, bufferMinutes int) error {
	if date.Format(domain.DateFormat) < now.Format(domain.DateFormat) {
		return ErrInvalidDate
	}

	if len(scheduling.FilterPastSlots([]types.TimeString{start}, date, now, bufferMinutes)) == 0 {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, bufferMinutes)
	}

	return nil
}

func containsSlot(slots []types.TimeString, start types.TimeString) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
