package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
)

// UseCase use case для получения свободных слотов барбера на дату
type UseCase struct {
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	bookingRepo      BookingRepository
	pricingRepo      PricingRepository
	metrics          Metrics
	timeProvider     TimeProvider
	pastSlotBuffer   int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	bookingRepo BookingRepository,
	pricingRepo PricingRepository,
	metrics Metrics,
	timeProvider TimeProvider,
	pastSlotBufferMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		bookingRepo:      bookingRepo,
		pricingRepo:      pricingRepo,
		metrics:          metrics,
		timeProvider:     timeProvider,
		pastSlotBuffer:   pastSlotBufferMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	response := &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	// 4. Получаем расписание и отпуска на дату
	rules, err := uc.availabilityRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	timeOff, err := uc.timeOffRepo.GetByBarberInRange(ctx, req.BarberID, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get time off: %v", err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	// 5. Барбер не работает в этот день - это не ошибка
	if !scheduling.IsBarberAvailableOnDate(req.BarberID, req.Date, rules, timeOff) {
		response.Reason = unavailableReason(req, rules)
		uc.logger.Info("GetAvailableSlots: barber id=%d unavailable on %s: %s",
			req.BarberID, req.Date.Format(domain.DateFormat), response.Reason)
		return response, nil
	}
	response.Available = true

	// 6. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  req.BarberID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты и убираем прошедшие
	starts, err := scheduling.GetAvailableTimeSlotsForBarber(req.BarberID, req.Date, service.DurationMinutes, rules, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	starts = scheduling.FilterPastSlots(starts, req.Date, uc.timeProvider.Now(), uc.pastSlotBuffer)

	// 8. Считаем цену каждого слота
	pricing, err := uc.pricingRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get pricing: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	slots, err := priceSlots(starts, barber, service, scheduling.NewPricingIndex(pricing))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to price slots: %v", err)
		return nil, fmt.Errorf("%w: failed to price slots: %v", ErrInternal, err)
	}
	response.Slots = slots

	uc.metrics.ObserveSlotsGenerated(req.BarberID, len(slots))
	uc.logger.Info("GetAvailableSlots: %d slots for barber=%d, service=%d, date=%s",
		len(slots), req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}
