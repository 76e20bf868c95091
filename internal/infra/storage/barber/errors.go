package barber

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	ErrBuildQuery = errors.New("barber.repository: failed to build query")
	ErrScanRow    = errors.New("barber.repository: failed to scan row")
)
