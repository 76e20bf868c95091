package get_price

import (
	"context"
	"errors"
	"fmt"

	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
)

// UseCase use case для расчёта цены услуги у барбера в заданное время
type UseCase struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	pricingRepo PricingRepository
	logger      Logger
}

func NewUseCase(barberRepo BarberRepository, serviceRepo ServiceRepository, pricingRepo PricingRepository, logger Logger) *UseCase {
	return &UseCase{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BarberID <= 0 || req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: barberID and serviceID must be positive", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetPrice: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetPrice: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	rows, err := uc.pricingRepo.GetByBarberID(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetPrice: failed to get pricing for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	quote, err := scheduling.CalculatePrice(req.BarberID, req.ServiceID, req.Time, barber, scheduling.NewPricingIndex(rows), service.BasePrice)
	if err != nil {
		// Невалидные границы вечернего окна в профиле барбера
		uc.logger.Error("GetPrice: failed to resolve price: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if quote.IsFallback {
		uc.logger.Warn("GetPrice: no %s price for barber=%d, service=%d, using base price",
			quote.Period, req.BarberID, req.ServiceID)
	}

	return &Response{
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Time:       req.Time,
		Price:      quote.Amount,
		TimePeriod: quote.Period,
		IsFallback: quote.IsFallback,
	}, nil
}
