package get_available_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

type mockBarberRepo struct{ mock.Mock }

func (m *mockBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barber), args.Error(1)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberAvailability, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]*domain.BarberAvailability), args.Error(1)
}

type mockTimeOffRepo struct{ mock.Mock }

func (m *mockTimeOffRepo) GetByBarberInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.BarberTimeOff, error) {
	args := m.Called(ctx, barberID, from, to)
	return args.Get(0).([]*domain.BarberTimeOff), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockPricingRepo struct{ mock.Mock }

func (m *mockPricingRepo) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]*domain.BarberServicePricing), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
