package create_recurring_bookings

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на создание серии бронирований
type Request struct {
	CustomerID  int64
	BarberID    int64
	ServiceID   int64
	StartDate   time.Time
	StartTime   types.TimeString
	Pattern     domain.RecurrencePattern
	Occurrences int
	Notes       *string
}

// Response созданные и пропущенные вхождения серии
type Response struct {
	SeriesID       string
	RequestedCount int
	Created        []CreatedBooking
	Skipped        []domain.DateAvailabilityResult
}

// CreatedBooking созданное вхождение серии
type CreatedBooking struct {
	ID          int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      domain.BookingStatus
	Price       float64
	TimePeriod  domain.TimePeriod
}
