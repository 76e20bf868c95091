package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	timeoffRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/timeoff"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

// upcomingTimeOffDays горизонт, на который показываются отсутствия в расписании
const upcomingTimeOffDays = 365

// Service сервис управления расписанием барбера: недельные блоки, отсутствия и цены.
// Изменения доступны только сотруднику, который управляет барбером.
type Service struct {
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	pricingRepo      PricingRepository
	pricingCache     PricingCache
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	pricingRepo PricingRepository,
	pricingCache PricingCache,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		pricingRepo:      pricingRepo,
		pricingCache:     pricingCache,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// GetSchedule возвращает публичное расписание барбера
func (s *Service) GetSchedule(ctx context.Context, barberID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for barber=%d", barberID)

	barber, err := s.getBarber(ctx, "GetSchedule", barberID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.availabilityRepo.GetByBarberID(ctx, barberID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get availability for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetSchedule - availability: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	timeOff, err := s.timeOffRepo.GetByBarberInRange(ctx, barberID, now, now.AddDate(0, 0, upcomingTimeOffDays))
	if err != nil {
		s.logger.Error("GetSchedule: failed to get time off for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetSchedule - time off: %v", ErrInternal, err)
	}

	pricing, err := s.pricingRepo.GetByBarberID(ctx, barberID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get pricing for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetSchedule - pricing: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		BarberID:          barber.ID,
		Name:              barber.Name,
		EveningHoursStart: barber.EveningHoursStart.String(),
		EveningHoursEnd:   barber.EveningHoursEnd.String(),
		Availability:      models.FromDomainAvailability(blocks),
		TimeOff:           make([]models.TimeOffResponse, 0, len(timeOff)),
		Pricing:           models.FromDomainPricing(pricing),
	}
	for _, t := range timeOff {
		resp.TimeOff = append(resp.TimeOff, models.FromDomainTimeOff(t))
	}

	return resp, nil
}

// ReplaceAvailability атомарно заменяет недельное расписание барбера
func (s *Service) ReplaceAvailability(ctx context.Context, req *models.ReplaceAvailabilityRequest) ([]models.AvailabilityBlockResponse, error) {
	s.logger.Info("ReplaceAvailability: barber=%d, blocks=%d by user=%d", req.BarberID, len(req.Blocks), req.UserID)

	// 1. Валидация блоков
	if err := validateBlocks(req.Blocks); err != nil {
		s.logger.Warn("ReplaceAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Права доступа
	if err := s.checkStaffAccess(ctx, "ReplaceAvailability", req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Удаление и вставка в одной транзакции
	var stored []*domain.BarberAvailability
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.ReplaceForBarber(txCtx, req.BarberID, req.ToDomainBlocks()); err != nil {
			return err
		}
		var err error
		stored, err = s.availabilityRepo.GetByBarberID(txCtx, req.BarberID)
		return err
	})
	if err != nil {
		s.logger.Error("ReplaceAvailability: failed for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ReplaceAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceAvailability: barber=%d now has %d blocks", req.BarberID, len(stored))
	return models.FromDomainAvailability(stored), nil
}

// AddTimeOff добавляет период отсутствия (даты включительно)
func (s *Service) AddTimeOff(ctx context.Context, req *models.AddTimeOffRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("AddTimeOff: barber=%d, %s..%s by user=%d", req.BarberID, req.StartDate, req.EndDate, req.UserID)

	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}
	if err := validateTimeOffReason(req.Reason); err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, "AddTimeOff", req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	created, err := s.timeOffRepo.Create(ctx, &domain.BarberTimeOff{
		BarberID:  req.BarberID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	})
	if err != nil {
		s.logger.Error("AddTimeOff: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: AddTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddTimeOff: created time off id=%d for barber=%d", created.ID, req.BarberID)
	resp := models.FromDomainTimeOff(created)
	return &resp, nil
}

// DeleteTimeOff удаляет период отсутствия барбера
func (s *Service) DeleteTimeOff(ctx context.Context, req *models.DeleteTimeOffRequest) error {
	s.logger.Info("DeleteTimeOff: barber=%d, timeOff=%d by user=%d", req.BarberID, req.TimeOffID, req.UserID)

	if err := s.checkStaffAccess(ctx, "DeleteTimeOff", req.BarberID, req.UserID); err != nil {
		return err
	}

	if err := s.timeOffRepo.Delete(ctx, req.BarberID, req.TimeOffID); err != nil {
		if errors.Is(err, timeoffRepo.ErrTimeOffNotFound) {
			s.logger.Warn("DeleteTimeOff: time off id=%d not found for barber=%d", req.TimeOffID, req.BarberID)
			return ErrTimeOffNotFound
		}
		s.logger.Error("DeleteTimeOff: repository error: %v", err)
		return fmt.Errorf("%w: DeleteTimeOff - repository error: %v", ErrInternal, err)
	}

	return nil
}

// UpsertPricing устанавливает цены барбера и сбрасывает кеш таблицы цен
func (s *Service) UpsertPricing(ctx context.Context, req *models.UpsertPricingRequest) ([]models.PricingResponse, error) {
	s.logger.Info("UpsertPricing: barber=%d, entries=%d by user=%d", req.BarberID, len(req.Entries), req.UserID)

	if err := validatePricing(req.Entries); err != nil {
		s.logger.Warn("UpsertPricing: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, "UpsertPricing", req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	// Проверяем услуги до транзакции
	for _, e := range req.Entries {
		if _, err := s.serviceRepo.GetByID(ctx, e.ServiceID); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, e.ServiceID)
			}
			return nil, fmt.Errorf("%w: UpsertPricing - service lookup: %v", ErrInternal, err)
		}
	}

	stored := make([]*domain.BarberServicePricing, 0, len(req.Entries))
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, e := range req.Entries {
			row, err := s.pricingRepo.Upsert(txCtx, &domain.BarberServicePricing{
				BarberID:   req.BarberID,
				ServiceID:  e.ServiceID,
				TimePeriod: e.TimePeriod,
				Price:      e.Price,
			})
			if err != nil {
				return err
			}
			stored = append(stored, row)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpsertPricing: failed for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpsertPricing - repository error: %v", ErrInternal, err)
	}

	// Ошибка сброса кеша не откатывает запись: запись истечёт по TTL
	if err := s.pricingCache.Invalidate(ctx, req.BarberID); err != nil {
		s.logger.Warn("UpsertPricing: failed to invalidate pricing cache for barber=%d: %v", req.BarberID, err)
	}

	return models.FromDomainPricing(stored), nil
}

// Вспомогательные методы

func (s *Service) getBarber(ctx context.Context, op string, barberID int64) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("%s: barber id=%d not found", op, barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("%s: failed to get barber id=%d: %v", op, barberID, err)
		return nil, fmt.Errorf("%w: %s - failed to get barber: %v", ErrInternal, op, err)
	}
	return barber, nil
}

func (s *Service) checkStaffAccess(ctx context.Context, op string, barberID, userID int64) error {
	barber, err := s.getBarber(ctx, op, barberID)
	if err != nil {
		return err
	}
	if !barber.IsManagedBy(userID) {
		s.logger.Warn("%s: user=%d does not manage barber=%d", op, userID, barberID)
		return ErrAccessDenied
	}
	return nil
}
