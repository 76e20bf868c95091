package check_recurring_availability

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	checkRecurring "github.com/m04kA/barbershop-booking/internal/usecase/check_recurring_availability"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// CheckRecurringRequest HTTP request model
type CheckRecurringRequest struct {
	ServiceID   int64  `json:"serviceId"`
	StartDate   string `json:"startDate"` // "2025-10-15"
	StartTime   string `json:"startTime"` // "10:00"
	Pattern     string `json:"pattern"`   // weekly, biweekly, every_3_weeks, monthly, every_5_weeks, every_6_weeks
	Occurrences int    `json:"occurrences"`
}

// DateResult вердикт по одной дате
type DateResult struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckRecurringResponse HTTP response model
type CheckRecurringResponse struct {
	BarberID       int64        `json:"barberId"`
	ServiceID      int64        `json:"serviceId"`
	StartTime      string       `json:"startTime"`
	EndTime        string       `json:"endTime"`
	Pattern        string       `json:"pattern"`
	Price          float64      `json:"price"`
	TimePeriod     string       `json:"timePeriod"`
	AvailableCount int          `json:"availableCount"`
	Dates          []DateResult `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckRecurringRequest) ToUseCaseRequest(barberID int64) (*checkRecurring.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkRecurring.Request{
		BarberID:    barberID,
		ServiceID:   r.ServiceID,
		StartDate:   startDate,
		StartTime:   startTime,
		Pattern:     domain.RecurrencePattern(r.Pattern),
		Occurrences: r.Occurrences,
	}, nil
}

// FromDomainResults конвертирует вердикты по датам
func FromDomainResults(results []domain.DateAvailabilityResult) []DateResult {
	dates := make([]DateResult, len(results))
	for i, res := range results {
		dates[i] = DateResult{
			Date:      res.DateString,
			Available: res.Available,
			Reason:    res.Reason,
		}
	}
	return dates
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkRecurring.Response) *CheckRecurringResponse {
	return &CheckRecurringResponse{
		BarberID:       resp.BarberID,
		ServiceID:      resp.ServiceID,
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Pattern:        string(resp.Pattern),
		Price:          resp.Price,
		TimePeriod:     string(resp.TimePeriod),
		AvailableCount: resp.AvailableCount,
		Dates:          FromDomainResults(resp.Results),
	}
}
