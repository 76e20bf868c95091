package check_recurring_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// UseCase проверяет доступность каждой даты повторяющейся серии без создания бронирований
type UseCase struct {
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	bookingRepo      BookingRepository
	pricingRepo      PricingRepository
	timeProvider     TimeProvider
	pastSlotBuffer   int
	maxOccurrences   int
	logger           Logger
}

func NewUseCase(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	bookingRepo BookingRepository,
	pricingRepo PricingRepository,
	timeProvider TimeProvider,
	pastSlotBufferMinutes int,
	maxOccurrences int,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		bookingRepo:      bookingRepo,
		pricingRepo:      pricingRepo,
		timeProvider:     timeProvider,
		pastSlotBuffer:   pastSlotBufferMinutes,
		maxOccurrences:   maxOccurrences,
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckRecurringAvailability: barber=%d, service=%d, start=%s %s, pattern=%s, occurrences=%d",
		req.BarberID, req.ServiceID, req.StartDate.Format(domain.DateFormat), req.StartTime, req.Pattern, req.Occurrences)

	// 1. Валидация
	if err := validateRequest(req, uc.maxOccurrences); err != nil {
		uc.logger.Warn("CheckRecurringAvailability: validation failed: %v", err)
		return nil, err
	}
	if err := validateStart(req.StartDate, req.StartTime, uc.timeProvider.Now(), uc.pastSlotBuffer); err != nil {
		uc.logger.Warn("CheckRecurringAvailability: %v", err)
		return nil, err
	}

	// 2. Барбер и услуга
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CheckRecurringAvailability: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CheckRecurringAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	endTime, err := types.CalculateEndTime(req.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Даты серии
	dates, err := scheduling.GenerateRecurringDates(req.StartDate, req.Pattern, req.Occurrences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	first, last := dates[0], dates[len(dates)-1]

	// 4. Снимок расписания, отпусков и бронирований на весь период серии
	rules, err := uc.availabilityRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	timeOff, err := uc.timeOffRepo.GetByBarberInRange(ctx, req.BarberID, first, last)
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: failed to get time off: %v", err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  req.BarberID,
		StartDate: &first,
		EndDate:   &last,
	})
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Вердикт по каждой дате
	results, err := scheduling.CheckRecurringAvailability(dates, req.StartTime, req.BarberID, service.DurationMinutes, rules, timeOff, bookings)
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: engine failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	results, err = scheduling.RestrictToWorkingSlots(results, req.StartTime, req.BarberID, service.DurationMinutes, rules, bookings)
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: engine failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Цена одна на всю серию: время начала не меняется
	pricing, err := uc.pricingRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("CheckRecurringAvailability: failed to get pricing: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	quote, err := scheduling.CalculatePrice(barber.ID, service.ID, req.StartTime, barber, scheduling.NewPricingIndex(pricing), service.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	available := len(scheduling.AvailableDates(results))
	uc.logger.Info("CheckRecurringAvailability: %d/%d dates available for barber=%d", available, len(results), req.BarberID)

	return &Response{
		BarberID:       req.BarberID,
		ServiceID:      req.ServiceID,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Pattern:        req.Pattern,
		Price:          quote.Amount,
		TimePeriod:     quote.Period,
		Results:        results,
		AvailableCount: available,
	}, nil
}
