package check_recurring_availability

import "errors"

var (
	ErrBarberNotFound  = errors.New("check_recurring_availability: barber not found")
	ErrServiceNotFound = errors.New("check_recurring_availability: service not found")

	// ErrInvalidDate возвращается, когда серия начинается в прошлом или слишком близко к текущему времени
	ErrInvalidDate = errors.New("check_recurring_availability: invalid start date")

	// ErrInvalidInput возвращается при некорректных входных данных (паттерн, количество, время)
	ErrInvalidInput = errors.New("check_recurring_availability: invalid input data")

	ErrInternal = errors.New("check_recurring_availability: internal error")
)
