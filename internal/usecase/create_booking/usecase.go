package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// UseCase use case для создания бронирования
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
	pastSlotBuffer   int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
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
		pastSlotBuffer:   pastSlotBufferMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка выполняются в сериализуемой транзакции;
// бронирования на дату читаются с FOR UPDATE.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, barber=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что слот ещё не прошёл
	if err := validateBookingTime(req.Date, req.StartTime, uc.timeProvider.Now(), uc.pastSlotBuffer); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем барбера и услугу
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Время окончания: запись не может пересекать полночь
	endTime, err := types.CalculateEndTime(req.StartTime, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: %s + %d min does not fit in the day", req.StartTime, service.DurationMinutes)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 5. Цена фиксируется в момент бронирования
	pricing, err := uc.pricingRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	quote, err := scheduling.CalculatePrice(barber.ID, service.ID, req.StartTime, barber, scheduling.NewPricingIndex(pricing), service.BasePrice)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve price: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve price: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 6. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Барбер работает в эту дату
		rules, err := uc.availabilityRepo.GetByBarberID(txCtx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		timeOff, err := uc.timeOffRepo.GetByBarberInRange(txCtx, req.BarberID, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get time off: %v", err)
			return fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
		}

		if !scheduling.IsBarberAvailableOnDate(req.BarberID, req.Date, rules, timeOff) {
			uc.logger.Warn("CreateBooking: barber id=%d not available on %s", req.BarberID, req.Date.Format(domain.DateFormat))
			return ErrBarberNotAvailable
		}

		// 6.2. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByBarberWithFilter(txCtx, domain.BarberBookingsFilter{
			BarberID:  req.BarberID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: concurrent booking holds the date: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Пересечение с существующими бронированиями
		booked, err := scheduling.IsSlotBooked(req.StartTime, req.BarberID, service.DurationMinutes, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if booked {
			uc.logger.Warn("CreateBooking: slot %s on %s already booked", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.4. Слот должен быть среди сгенерированных: внутри рабочего блока и на сетке 15 минут
		slots, err := scheduling.GetAvailableTimeSlotsForBarber(req.BarberID, req.Date, service.DurationMinutes, rules, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		if !containsSlot(slots, req.StartTime) {
			uc.logger.Warn("CreateBooking: %s is outside working hours of barber id=%d", req.StartTime, req.BarberID)
			return ErrInvalidTimeSlot
		}

		// 6.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:  req.CustomerID,
			BarberID:    req.BarberID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Status:      domain.StatusPending,
			Price:       quote.Amount,
			TimePeriod:  quote.Period,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: concurrent booking took the slot: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: transaction lost the race for slot %s: %v", req.StartTime, err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.metrics.ObserveBookingCreated("single")
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}
