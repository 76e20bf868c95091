package cache

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// PricingSource источник таблицы цен (репозиторий pricing)
type PricingSource interface {
	GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
