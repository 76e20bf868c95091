package models

import (
	"errors"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64   `json:"-"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64
	Status     *string
}

// GetBarberBookingsRequest запрос на получение бронирований барбера
type GetBarberBookingsRequest struct {
	UserID           int64
	BarberID         int64
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	IncludeCancelled bool       // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberBookingsRequest) ToDomainFilter() (domain.BarberBookingsFilter, error) {
	filter := domain.BarberBookingsFilter{
		BarberID:         r.BarberID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64   `json:"id"`
	CustomerID        int64   `json:"customerId"`
	BarberID          int64   `json:"barberId"`
	ServiceID         int64   `json:"serviceId"`
	BookingDate       string  `json:"bookingDate"` // "2025-10-15"
	StartTime         string  `json:"startTime"`   // "10:00"
	EndTime           string  `json:"endTime"`
	Status            string  `json:"status"`
	Price             float64 `json:"price"`
	TimePeriod        string  `json:"timePeriod"`
	RecurringSeriesID *string `json:"recurringSeriesId,omitempty"`
	Notes             *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		BarberID:           b.BarberID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		Price:              b.Price,
		TimePeriod:         string(b.TimePeriod),
		RecurringSeriesID:  b.RecurringSeriesID,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow:
		return s, nil
	}

	return "", ErrInvalidStatus
}
