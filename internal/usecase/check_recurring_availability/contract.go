package check_recurring_availability

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
}

// TimeOffRepository интерфейс репозитория периодов отсутствия
type TimeOffRepository interface {
	GetByBarberInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.BarberTimeOff, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error)
}

// PricingRepository интерфейс таблицы цен
type PricingRepository interface {
	GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
