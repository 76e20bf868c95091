package schedule

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrTimeOffNotFound возвращается, когда период отсутствия не найден
	ErrTimeOffNotFound = errors.New("time off not found")

	// ErrAccessDenied возвращается, когда пользователь не управляет расписанием барбера
	ErrAccessDenied = errors.New("access denied")

	// ErrOverlappingBlocks возвращается, когда блоки одного дня недели пересекаются
	ErrOverlappingBlocks = errors.New("availability blocks overlap")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
