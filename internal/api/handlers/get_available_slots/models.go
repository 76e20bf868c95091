package get_available_slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	BarberID        int64           `json:"barberId"`
	ServiceID       int64           `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Available       bool            `json:"available"`
	Reason          string          `json:"reason,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	DisplayTime string  `json:"displayTime"`
	Price       float64 `json:"price"`
	TimePeriod  string  `json:"timePeriod"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			DisplayTime: slot.DisplayTime,
			Price:       slot.Price,
			TimePeriod:  string(slot.TimePeriod),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Available:       resp.Available,
		Reason:          resp.Reason,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(barberID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
