package get_price

import "errors"

var (
	ErrBarberNotFound  = errors.New("get_price: barber not found")
	ErrServiceNotFound = errors.New("get_price: service not found")
	ErrInvalidInput    = errors.New("get_price: invalid input data")
	ErrInternal        = errors.New("get_price: internal error")
)
