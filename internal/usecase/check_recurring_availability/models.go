package check_recurring_availability

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса проверки серии
type Request struct {
	BarberID    int64
	ServiceID   int64
	StartDate   time.Time
	StartTime   types.TimeString
	Pattern     domain.RecurrencePattern
	Occurrences int
}

// Response вердикт по каждой дате серии
type Response struct {
	BarberID       int64
	ServiceID      int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	Pattern        domain.RecurrencePattern
	Price          float64
	TimePeriod     domain.TimePeriod
	Results        []domain.DateAvailabilityResult
	AvailableCount int
}
