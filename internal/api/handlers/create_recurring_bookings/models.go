package create_recurring_bookings

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	createRecurring "github.com/m04kA/barbershop-booking/internal/usecase/create_recurring_bookings"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// CreateRecurringRequest HTTP request model
type CreateRecurringRequest struct {
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	StartDate   string  `json:"startDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Pattern     string  `json:"pattern"`
	Occurrences int     `json:"occurrences"`
	Notes       *string `json:"notes,omitempty"`
}

// CreatedBooking созданное вхождение серии
type CreatedBooking struct {
	ID          int64   `json:"id"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	TimePeriod  string  `json:"timePeriod"`
}

// SkippedDate пропущенная дата с причиной
type SkippedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// CreateRecurringResponse HTTP response model
type CreateRecurringResponse struct {
	SeriesID       string           `json:"seriesId"`
	RequestedCount int              `json:"requestedCount"`
	CreatedCount   int              `json:"createdCount"`
	Bookings       []CreatedBooking `json:"bookings"`
	Skipped        []SkippedDate    `json:"skipped"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecurringRequest) ToUseCaseRequest(customerID int64) (*createRecurring.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createRecurring.Request{
		CustomerID:  customerID,
		BarberID:    r.BarberID,
		ServiceID:   r.ServiceID,
		StartDate:   startDate,
		StartTime:   startTime,
		Pattern:     domain.RecurrencePattern(r.Pattern),
		Occurrences: r.Occurrences,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRecurring.Response) *CreateRecurringResponse {
	out := &CreateRecurringResponse{
		SeriesID:       resp.SeriesID,
		RequestedCount: resp.RequestedCount,
		CreatedCount:   len(resp.Created),
		Bookings:       make([]CreatedBooking, len(resp.Created)),
		Skipped:        make([]SkippedDate, len(resp.Skipped)),
	}

	for i, b := range resp.Created {
		out.Bookings[i] = CreatedBooking{
			ID:          b.ID,
			BookingDate: b.BookingDate.Format(domain.DateFormat),
			StartTime:   b.StartTime.String(),
			EndTime:     b.EndTime.String(),
			Status:      string(b.Status),
			Price:       b.Price,
			TimePeriod:  string(b.TimePeriod),
		}
	}
	for i, s := range resp.Skipped {
		out.Skipped[i] = SkippedDate{Date: s.DateString, Reason: s.Reason}
	}

	return out
}
