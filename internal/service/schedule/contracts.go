package schedule

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberAvailability, error)
	ReplaceForBarber(ctx context.Context, barberID int64, blocks []*domain.BarberAvailability) error
}

// TimeOffRepository интерфейс репозитория периодов отсутствия
type TimeOffRepository interface {
	GetByBarberInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.BarberTimeOff, error)
	Create(ctx context.Context, t *domain.BarberTimeOff) (*domain.BarberTimeOff, error)
	Delete(ctx context.Context, barberID, id int64) error
}

// PricingRepository интерфейс таблицы цен
type PricingRepository interface {
	GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error)
	Upsert(ctx context.Context, p *domain.BarberServicePricing) (*domain.BarberServicePricing, error)
}

// PricingCache сбрасывает закешированную таблицу цен барбера
type PricingCache interface {
	Invalidate(ctx context.Context, barberID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
