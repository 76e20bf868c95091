package create_recurring_bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

const (
	outcomeAvailable = "available"
	outcomeSkipped   = "skipped"
)

// UseCase создаёт повторяющуюся серию бронирований.
// Недоступные даты пропускаются и возвращаются в ответе: серия создаётся частично.
type UseCase struct {
	bookingRepo      BookingRepository
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	pricingRepo      PricingRepository
	txManager        TransactionManager
	metrics          Metrics
	timeProvider     TimeProvider
	newSeriesID      SeriesIDGenerator
	pastSlotBuffer   int
	maxOccurrences   int
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	pricingRepo PricingRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	pastSlotBufferMinutes int,
	maxOccurrences int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		pricingRepo:      pricingRepo,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     timeProvider,
		newSeriesID:      uuid.NewString,
		pastSlotBuffer:   pastSlotBufferMinutes,
		maxOccurrences:   maxOccurrences,
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringBookings: customer=%d, barber=%d, service=%d, start=%s %s, pattern=%s, occurrences=%d",
		req.CustomerID, req.BarberID, req.ServiceID, req.StartDate.Format(domain.DateFormat), req.StartTime, req.Pattern, req.Occurrences)

	// 1. Валидация
	if err := validateRequest(req, uc.maxOccurrences); err != nil {
		uc.logger.Warn("CreateRecurringBookings: validation failed: %v", err)
		return nil, err
	}
	if err := validateStart(req.StartDate, req.StartTime, uc.timeProvider.Now(), uc.pastSlotBuffer); err != nil {
		uc.logger.Warn("CreateRecurringBookings: %v", err)
		return nil, err
	}

	// 2. Барбер, услуга, время окончания
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateRecurringBookings: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateRecurringBookings: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	endTime, err := types.CalculateEndTime(req.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Цена одинакова для всех вхождений
	pricing, err := uc.pricingRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("CreateRecurringBookings: failed to get pricing: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	quote, err := scheduling.CalculatePrice(barber.ID, service.ID, req.StartTime, barber, scheduling.NewPricingIndex(pricing), service.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Даты серии
	dates, err := scheduling.GenerateRecurringDates(req.StartDate, req.Pattern, req.Occurrences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	first, last := dates[0], dates[len(dates)-1]

	response := &Response{
		SeriesID:       uc.newSeriesID(),
		RequestedCount: len(dates),
		Created:        []CreatedBooking{},
		Skipped:        []domain.DateAvailabilityResult{},
	}

	// 5. Проверка и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := uc.availabilityRepo.GetByBarberID(txCtx, req.BarberID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		timeOff, err := uc.timeOffRepo.GetByBarberInRange(txCtx, req.BarberID, first, last)
		if err != nil {
			return fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetByBarberWithFilter(txCtx, domain.BarberBookingsFilter{
			BarberID:  req.BarberID,
			StartDate: &first,
			EndDate:   &last,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		results, err := scheduling.CheckRecurringAvailability(dates, req.StartTime, req.BarberID, service.DurationMinutes, rules, timeOff, bookings)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		results, err = scheduling.RestrictToWorkingSlots(results, req.StartTime, req.BarberID, service.DurationMinutes, rules, bookings)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		created := make([]CreatedBooking, 0, len(results))
		skipped := make([]domain.DateAvailabilityResult, 0)

		for _, r := range results {
			if !r.Available {
				skipped = append(skipped, r)
				continue
			}

			booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
				CustomerID:        req.CustomerID,
				BarberID:          req.BarberID,
				ServiceID:         req.ServiceID,
				BookingDate:       r.Date,
				StartTime:         req.StartTime,
				EndTime:           endTime,
				Status:            domain.StatusPending,
				Price:             quote.Amount,
				TimePeriod:        quote.Period,
				RecurringSeriesID: &response.SeriesID,
				Notes:             req.Notes,
			})
			if err != nil {
				if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
					return fmt.Errorf("%w: %s", ErrSlotNotAvailable, r.DateString)
				}
				return fmt.Errorf("%w: failed to create booking on %s: %v", ErrInternal, r.DateString, err)
			}

			created = append(created, CreatedBooking{
				ID:          booking.ID,
				BookingDate: r.Date,
				StartTime:   booking.StartTime,
				EndTime:     booking.EndTime,
				Status:      booking.Status,
				Price:       booking.Price,
				TimePeriod:  booking.TimePeriod,
			})
		}

		if len(created) == 0 {
			response.Skipped = skipped
			return ErrNoAvailableDates
		}

		response.Created = created
		response.Skipped = skipped
		return nil
	})

	if txmanager.IsSerializationFailure(err) {
		err = fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	}
	if err != nil {
		if errors.Is(err, ErrNoAvailableDates) {
			uc.logger.Warn("CreateRecurringBookings: none of %d dates available for barber=%d", len(dates), req.BarberID)
		} else {
			uc.logger.Error("CreateRecurringBookings: %v", err)
		}
		return nil, err
	}

	for range response.Created {
		uc.metrics.ObserveRecurringOccurrence(outcomeAvailable)
		uc.metrics.ObserveBookingCreated("recurring")
	}
	for range response.Skipped {
		uc.metrics.ObserveRecurringOccurrence(outcomeSkipped)
	}

	uc.logger.Info("CreateRecurringBookings: series=%s created %d, skipped %d",
		response.SeriesID, len(response.Created), len(response.Skipped))

	return response, nil
}
