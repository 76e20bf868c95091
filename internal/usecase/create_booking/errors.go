package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда слот начинается раньше now + буфер
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrBarberNotAvailable возвращается, когда барбер не работает в эту дату (выходной или отпуск)
	ErrBarberNotAvailable = errors.New("create_booking: barber is not available on this date")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в рабочий блок или не кратно шагу сетки
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
