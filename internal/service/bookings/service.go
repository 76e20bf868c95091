package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	barberRepo  BarberRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видят клиент и сотрудник, управляющий расписанием барбера
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != userID {
		if err := s.checkStaffAccess(ctx, booking.BarberID, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetSeries получает все вхождения серии, к которой относится бронирование.
// Права проверяются по самому бронированию, как в GetByID.
func (s *Service) GetSeries(ctx context.Context, bookingID int64, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetSeries: fetching series of booking id=%d for user=%d", bookingID, userID)

	// 1. Получаем бронирование и проверяем доступ
	booking, err := s.getBooking(ctx, "GetSeries", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != userID {
		if err := s.checkStaffAccess(ctx, booking.BarberID, userID); err != nil {
			s.logger.Warn("GetSeries: access denied for user=%d to booking id=%d", userID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	// 2. Одиночное бронирование считается серией из одного элемента
	if booking.RecurringSeriesID == nil {
		return models.FromDomainBookingList([]*domain.Booking{booking}), nil
	}

	// 3. Получаем остальные вхождения
	series, err := s.bookingRepo.GetBySeriesID(ctx, *booking.RecurringSeriesID)
	if err != nil {
		s.logger.Error("GetSeries: repository error for series=%s: %v", *booking.RecurringSeriesID, err)
		return nil, fmt.Errorf("%w: GetSeries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSeries: series=%s has %d bookings", *booking.RecurringSeriesID, len(series))
	return models.FromDomainBookingList(series), nil
}

// GetCustomerBookings получает историю бронирований клиента
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBarberBookings получает бронирования барбера с фильтрацией.
// Доступно только сотруднику, управляющему расписанием барбера.
//
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только подтвержденные: Status = "confirmed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetBarberBookings: fetching bookings for barber=%d, user=%d", req.BarberID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkStaffAccess(ctx, req.BarberID, req.UserID); err != nil {
		return nil, err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBarberBookings: invalid filter for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: successfully fetched %d bookings for barber=%d", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить может клиент или сотрудник барбера, отменённый слот снова свободен
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if booking.CustomerID != req.UserID {
		if err := s.checkStaffAccess(ctx, booking.BarberID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только сотруднику барбера
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkStaffAccess(ctx, booking.BarberID, req.UserID); err != nil {
		return err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot move from %s to %s", bookingID, booking.Status, newStatus)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Отмена через смену статуса тоже проставляет cancelled_at
	if newStatus == domain.StatusCancelled {
		err = s.bookingRepo.Cancel(ctx, bookingID, nil)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkStaffAccess проверяет, что пользователь управляет расписанием барбера
func (s *Service) checkStaffAccess(ctx context.Context, barberID int64, userID int64) error {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("checkStaffAccess: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get barber: %v", ErrInternal, err)
	}

	if !barber.IsManagedBy(userID) {
		s.logger.Warn("checkStaffAccess: user=%d does not manage barber=%d", userID, barberID)
		return ErrAccessDenied
	}

	return nil
}
