package get_price

import (
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type Request struct {
	BarberID  int64
	ServiceID int64
	Time      types.TimeString
}

type Response struct {
	BarberID   int64
	ServiceID  int64
	Time       types.TimeString
	Price      float64
	TimePeriod domain.TimePeriod
	IsFallback bool // цена взята из базовой цены услуги
}
