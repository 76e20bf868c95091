package create_recurring_bookings

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error)
}

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

// PricingRepository интерфейс таблицы цен
type PricingRepository interface {
	GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SeriesIDGenerator выдаёт идентификатор новой серии
type SeriesIDGenerator func() string

// Metrics интерфейс для бизнес-метрик
type Metrics interface {
	ObserveRecurringOccurrence(outcome string)
	ObserveBookingCreated(source string)
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
