package models

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модели

// AvailabilityBlock рабочий блок недельного расписания
type AvailabilityBlock struct {
	DayOfWeek   int              `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	IsAvailable *bool            `json:"isAvailable,omitempty"` // по умолчанию true
}

// ReplaceAvailabilityRequest полностью заменяет недельное расписание барбера
type ReplaceAvailabilityRequest struct {
	UserID   int64               `json:"-"`
	BarberID int64               `json:"-"`
	Blocks   []AvailabilityBlock `json:"blocks"`
}

// AddTimeOffRequest запрос на добавление периода отсутствия
type AddTimeOffRequest struct {
	UserID    int64   `json:"-"`
	BarberID  int64   `json:"-"`
	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// DeleteTimeOffRequest запрос на удаление периода отсутствия
type DeleteTimeOffRequest struct {
	UserID    int64
	BarberID  int64
	TimeOffID int64
}

// PricingEntry цена услуги в периоде
type PricingEntry struct {
	ServiceID  int64             `json:"serviceId"`
	TimePeriod domain.TimePeriod `json:"timePeriod"`
	Price      float64           `json:"price"`
}

// UpsertPricingRequest запрос на установку цен барбера
type UpsertPricingRequest struct {
	UserID   int64          `json:"-"`
	BarberID int64          `json:"-"`
	Entries  []PricingEntry `json:"entries"`
}

// Response модели

// AvailabilityBlockResponse блок расписания
type AvailabilityBlockResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// TimeOffResponse период отсутствия
type TimeOffResponse struct {
	ID        int64   `json:"id"`
	BarberID  int64   `json:"barberId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// PricingResponse строка таблицы цен
type PricingResponse struct {
	ID         int64   `json:"id"`
	ServiceID  int64   `json:"serviceId"`
	TimePeriod string  `json:"timePeriod"`
	Price      float64 `json:"price"`
}

// ScheduleResponse расписание барбера: рабочие блоки, ближайшие отсутствия и цены
type ScheduleResponse struct {
	BarberID          int64                       `json:"barberId"`
	Name              string                      `json:"name"`
	EveningHoursStart string                      `json:"eveningHoursStart,omitempty"`
	EveningHoursEnd   string                      `json:"eveningHoursEnd,omitempty"`
	Availability      []AvailabilityBlockResponse `json:"availability"`
	TimeOff           []TimeOffResponse           `json:"timeOff"`
	Pricing           []PricingResponse           `json:"pricing"`
}

// Методы конвертации

// ToDomainBlocks конвертирует блоки запроса в domain модели
func (r *ReplaceAvailabilityRequest) ToDomainBlocks() []*domain.BarberAvailability {
	blocks := make([]*domain.BarberAvailability, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		available := true
		if b.IsAvailable != nil {
			available = *b.IsAvailable
		}
		blocks = append(blocks, &domain.BarberAvailability{
			BarberID:    r.BarberID,
			DayOfWeek:   b.DayOfWeek,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			IsAvailable: available,
		})
	}
	return blocks
}

// FromDomainAvailability конвертирует блоки расписания в DTO
func FromDomainAvailability(blocks []*domain.BarberAvailability) []AvailabilityBlockResponse {
	resp := make([]AvailabilityBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, AvailabilityBlockResponse{
			ID:          b.ID,
			DayOfWeek:   b.DayOfWeek,
			StartTime:   b.StartTime.String(),
			EndTime:     b.EndTime.String(),
			IsAvailable: b.IsAvailable,
		})
	}
	return resp
}

// FromDomainTimeOff конвертирует период отсутствия в DTO
func FromDomainTimeOff(t *domain.BarberTimeOff) TimeOffResponse {
	return TimeOffResponse{
		ID:        t.ID,
		BarberID:  t.BarberID,
		StartDate: t.StartDate.Format(domain.DateFormat),
		EndDate:   t.EndDate.Format(domain.DateFormat),
		Reason:    t.Reason,
	}
}

// FromDomainPricing конвертирует таблицу цен в DTO
func FromDomainPricing(rows []*domain.BarberServicePricing) []PricingResponse {
	resp := make([]PricingResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, PricingResponse{
			ID:         p.ID,
			ServiceID:  p.ServiceID,
			TimePeriod: string(p.TimePeriod),
			Price:      p.Price,
		})
	}
	return resp
}

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
