package check_recurring_availability

import (
	"context"

	checkRecurring "github.com/m04kA/barbershop-booking/internal/usecase/check_recurring_availability"
)

type CheckRecurringAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkRecurring.Request) (*checkRecurring.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
