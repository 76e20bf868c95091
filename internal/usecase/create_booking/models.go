package create_booking

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента (X-User-ID)
	BarberID   int64            // ID барбера
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала, например "10:00"
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	CustomerID  int64
	BarberID    int64
	ServiceID   int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      domain.BookingStatus
	Price       float64
	TimePeriod  domain.TimePeriod
	Notes       *string
	CreatedAt   time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		BarberID:    b.BarberID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		Price:       b.Price,
		TimePeriod:  b.TimePeriod,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
}
