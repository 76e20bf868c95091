package get_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/pkg/types"
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

type mockPricingRepo struct{ mock.Mock }

func (m *mockPricingRepo) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]*domain.BarberServicePricing), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newUseCase() (*UseCase, *mockBarberRepo, *mockServiceRepo, *mockPricingRepo) {
	barbers := &mockBarberRepo{}
	services := &mockServiceRepo{}
	pricing := &mockPricingRepo{}
	return NewUseCase(barbers, services, pricing, noopLogger{}), barbers, services, pricing
}

func TestExecute(t *testing.T) {
	uc, barbers, services, pricing := newUseCase()
	barbers.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Barber{ID: 1, EveningHoursStart: "17:00", EveningHoursEnd: "21:00"}, nil)
	services.On("GetByID", mock.Anything, int64(2)).Return(&domain.Service{ID: 2, BasePrice: 25}, nil)
	pricing.On("GetByBarberID", mock.Anything, int64(1)).Return([]*domain.BarberServicePricing{
		{BarberID: 1, ServiceID: 2, TimePeriod: domain.PeriodEvening, Price: 40},
	}, nil)

	tests := []struct {
		time       string
		price      float64
		period     domain.TimePeriod
		isFallback bool
	}{
		{time: "17:00", price: 40, period: domain.PeriodEvening},
		{time: "21:00", price: 25, period: domain.PeriodRegular, isFallback: true},
		{time: "11:15", price: 25, period: domain.PeriodRegular, isFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Time: types.TimeString(tt.time)})
			require.NoError(t, err)
			assert.Equal(t, tt.price, resp.Price)
			assert.Equal(t, tt.period, resp.TimePeriod)
			assert.Equal(t, tt.isFallback, resp.IsFallback)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	uc, barbers, services, _ := newUseCase()
	barbers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Barber{ID: 1}, nil)
	services.On("GetByID", mock.Anything, int64(9)).Return(nil, serviceRepo.ErrServiceNotFound)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 9, Time: "10:00"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 9, Time: "10:7"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
