package get_price

import (
	"context"

	getPrice "github.com/m04kA/barbershop-booking/internal/usecase/get_price"
)

type GetPriceUseCase interface {
	Execute(ctx context.Context, req *getPrice.Request) (*getPrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
