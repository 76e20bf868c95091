package get_barber_bookings

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
