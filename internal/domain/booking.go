package domain

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents an appointment with a barber
type Booking struct {
	ID                int64
	CustomerID        int64
	BarberID          int64
	ServiceID         int64
	BookingDate       time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	Status            BookingStatus
	Price             float64
	TimePeriod        TimePeriod
	RecurringSeriesID *string // uuid of the series this occurrence belongs to
	Notes             *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot returns true if the booking occupies the barber's calendar.
// Only cancelled bookings free their slot; no-shows still hold it.
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinal returns true if the booking can no longer change status
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// CanTransitionTo reports whether status may change from the current value to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
	default:
		return false
	}
}

// BarberBookingsFilter фильтр для получения бронирований барбера
type BarberBookingsFilter struct {
	BarberID         int64          // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// IsSingleDate returns true when the filter targets exactly one calendar date
func (f BarberBookingsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil &&
		f.StartDate.Format(DateFormat) == f.EndDate.Format(DateFormat)
}
