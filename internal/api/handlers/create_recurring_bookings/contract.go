package create_recurring_bookings

import (
	"context"

	createRecurring "github.com/m04kA/barbershop-booking/internal/usecase/create_recurring_bookings"
)

type CreateRecurringBookingsUseCase interface {
	Execute(ctx context.Context, req *createRecurring.Request) (*createRecurring.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
