package get_available_slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID  int64
	ServiceID int64
	Date      time.Time // Дата без времени
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	BarberID        int64
	ServiceID       int64
	DurationMinutes int
	Available       bool   // Работает ли барбер в этот день
	Reason          string // Причина, если не работает
	Slots           []Slot
}

// Slot свободный слот с ценой
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	DisplayTime string // "9:30 AM"
	Price       float64
	TimePeriod  domain.TimePeriod
}
