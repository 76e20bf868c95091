package create_recurring_bookings

import "errors"

var (
	ErrBarberNotFound  = errors.New("create_recurring_bookings: barber not found")
	ErrServiceNotFound = errors.New("create_recurring_bookings: service not found")

	// ErrInvalidDate возвращается, когда первое вхождение серии уже прошло
	ErrInvalidDate = errors.New("create_recurring_bookings: invalid start date")

	// ErrNoAvailableDates возвращается, когда ни одна дата серии недоступна
	ErrNoAvailableDates = errors.New("create_recurring_bookings: no available dates in series")

	// ErrSlotNotAvailable возвращается, когда параллельная транзакция заняла одну из дат
	ErrSlotNotAvailable = errors.New("create_recurring_bookings: slot taken concurrently, retry")

	ErrInvalidInput = errors.New("create_recurring_bookings: invalid input data")
	ErrInternal     = errors.New("create_recurring_bookings: internal error")
)
