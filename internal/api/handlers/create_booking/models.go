package create_booking

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	createBooking "github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customerId"`
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	TimePeriod  string  `json:"timePeriod"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// errInvalidTime отличает ошибку времени от ошибки даты
type errInvalidTime struct{ err error }

func (e errInvalidTime) Error() string { return e.err.Error() }

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime{err: err}
	}

	return &createBooking.Request{
		CustomerID: customerID,
		BarberID:   r.BarberID,
		ServiceID:  r.ServiceID,
		Date:       bookingDate,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		BarberID:    resp.BarberID,
		ServiceID:   resp.ServiceID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      string(resp.Status),
		Price:       resp.Price,
		TimePeriod:  string(resp.TimePeriod),
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
