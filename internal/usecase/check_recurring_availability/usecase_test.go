package check_recurring_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// 2024-01-01 is a Monday
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	barbers      *mockBarberRepo
	services     *mockServiceRepo
	availability *mockAvailabilityRepo
	timeOff      *mockTimeOffRepo
	bookings     *mockBookingRepo
	pricing      *mockPricingRepo
}

func newFixture() *fixture {
	f := &fixture{
		barbers:      &mockBarberRepo{},
		services:     &mockServiceRepo{},
		availability: &mockAvailabilityRepo{},
		timeOff:      &mockTimeOffRepo{},
		bookings:     &mockBookingRepo{},
		pricing:      &mockPricingRepo{},
	}
	f.barbers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Barber{
		ID:                7,
		EveningHoursStart: "17:00",
		EveningHoursEnd:   "21:00",
	}, nil)
	f.services.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{ID: 3, DurationMinutes: 30, BasePrice: 20}, nil)
	f.pricing.On("GetByBarberID", mock.Anything, int64(7)).Return([]*domain.BarberServicePricing{
		{BarberID: 7, ServiceID: 3, TimePeriod: domain.PeriodRegular, Price: 25},
	}, nil)
	f.availability.On("GetByBarberID", mock.Anything, int64(7)).Return([]*domain.BarberAvailability{{
		BarberID:    7,
		DayOfWeek:   int(time.Monday),
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
	}}, nil)
	return f
}

func (f *fixture) useCase() *UseCase {
	now := time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)
	return NewUseCase(f.barbers, f.services, f.availability, f.timeOff, f.bookings, f.pricing,
		fixedTime{now: now}, domain.DefaultPastSlotBufferMinutes, domain.DefaultMaxRecurringOccurrences, noopLogger{})
}

func weeklyRequest(occurrences int) *Request {
	return &Request{
		BarberID:    7,
		ServiceID:   3,
		StartDate:   monday,
		StartTime:   "10:00",
		Pattern:     domain.PatternWeekly,
		Occurrences: occurrences,
	}
}

func TestExecute_ReportsEachOccurrence(t *testing.T) {
	f := newFixture()
	secondWeek := monday.AddDate(0, 0, 7)
	thirdWeek := monday.AddDate(0, 0, 14)
	lastWeek := monday.AddDate(0, 0, 21)

	f.timeOff.On("GetByBarberInRange", mock.Anything, int64(7), monday, lastWeek).Return([]*domain.BarberTimeOff{
		{BarberID: 7, StartDate: thirdWeek, EndDate: thirdWeek},
	}, nil)
	f.bookings.On("GetByBarberWithFilter", mock.Anything, mock.MatchedBy(func(filter domain.BarberBookingsFilter) bool {
		return filter.BarberID == 7 && filter.StartDate.Equal(monday) && filter.EndDate.Equal(lastWeek)
	})).Return([]*domain.Booking{{
		BarberID:    7,
		BookingDate: secondWeek,
		StartTime:   "10:15",
		EndTime:     "10:45",
		Status:      domain.StatusConfirmed,
	}}, nil)

	resp, err := f.useCase().Execute(context.Background(), weeklyRequest(4))
	require.NoError(t, err)

	require.Len(t, resp.Results, 4)
	assert.True(t, resp.Results[0].Available)
	assert.Equal(t, domain.ReasonSlotBooked, resp.Results[1].Reason)
	assert.Equal(t, domain.ReasonTimeOff, resp.Results[2].Reason)
	assert.True(t, resp.Results[3].Available)
	assert.Equal(t, "2024-01-22", resp.Results[3].DateString)

	assert.Equal(t, 2, resp.AvailableCount)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, 25.0, resp.Price)
	assert.Equal(t, domain.PeriodRegular, resp.TimePeriod)
}

func TestExecute_NonWorkingWeekday(t *testing.T) {
	f := newFixture()
	tuesday := monday.AddDate(0, 0, 1)
	f.timeOff.On("GetByBarberInRange", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]*domain.BarberTimeOff{}, nil)
	f.bookings.On("GetByBarberWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	req := weeklyRequest(2)
	req.StartDate = tuesday

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.AvailableCount)
	for _, r := range resp.Results {
		assert.False(t, r.Available)
		assert.Equal(t, domain.ReasonNotWorkingDay, r.Reason)
	}
}

func TestExecute_StartOutsideWorkingHours(t *testing.T) {
	f := newFixture()
	f.timeOff.On("GetByBarberInRange", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]*domain.BarberTimeOff{}, nil)
	f.bookings.On("GetByBarberWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	req := weeklyRequest(3)
	req.StartTime = "16:45"

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.AvailableCount)
	for _, r := range resp.Results {
		assert.False(t, r.Available)
		assert.Equal(t, domain.ReasonOutsideHours, r.Reason)
	}
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "zero occurrences", mutate: func(r *Request) { r.Occurrences = 0 }, wantErr: ErrInvalidInput},
		{name: "too many occurrences", mutate: func(r *Request) { r.Occurrences = domain.DefaultMaxRecurringOccurrences + 1 }, wantErr: ErrInvalidInput},
		{name: "unknown pattern", mutate: func(r *Request) { r.Pattern = "daily" }, wantErr: ErrInvalidInput},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "25:00" }, wantErr: ErrInvalidInput},
		{name: "start in the past", mutate: func(r *Request) { r.StartDate = monday.AddDate(0, 0, -7) }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := weeklyRequest(4)
			tt.mutate(req)

			_, err := newFixture().useCase().Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	t.Run("service not found", func(t *testing.T) {
		f := newFixture()
		f.services = &mockServiceRepo{}
		f.services.On("GetByID", mock.Anything, int64(3)).Return(nil, serviceRepo.ErrServiceNotFound)

		_, err := f.useCase().Execute(context.Background(), weeklyRequest(2))
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("bookings query fails", func(t *testing.T) {
		f := newFixture()
		f.timeOff.On("GetByBarberInRange", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]*domain.BarberTimeOff{}, nil)
		f.bookings.On("GetByBarberWithFilter", mock.Anything, mock.Anything).
			Return([]*domain.Booking(nil), errors.New("connection reset"))

		_, err := f.useCase().Execute(context.Background(), weeklyRequest(2))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
