package get_available_slots

import (
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/scheduling"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// priceSlots дополняет каждый свободный старт концом, периодом и ценой.
// Цена берётся из таблицы барбера, а при её отсутствии из базовой цены услуги.
func priceSlots(
	starts []types.TimeString,
	barber *domain.Barber,
	service *domain.Service,
	index *scheduling.PricingIndex,
) ([]Slot, error) {
	result := make([]Slot, 0, len(starts))

	for _, start := range starts {
		end, err := types.CalculateEndTime(start, service.DurationMinutes)
		if err != nil {
			return nil, err
		}

		quote, err := scheduling.CalculatePrice(barber.ID, service.ID, start, barber, index, service.BasePrice)
		if err != nil {
			return nil, err
		}

		display, err := start.Format12Hour()
		if err != nil {
			return nil, err
		}

		result = append(result, Slot{
			StartTime:   start,
			EndTime:     end,
			DisplayTime: display,
			Price:       quote.Amount,
			TimePeriod:  quote.Period,
		})
	}

	return result, nil
}

// unavailableReason объясняет, почему барбер не работает в дату
func unavailableReason(req *Request, rules []*domain.BarberAvailability) string {
	if scheduling.IsBarberAvailableOnDate(req.BarberID, req.Date, rules, nil) {
		return domain.ReasonTimeOff
	}
	return domain.ReasonNotWorkingDay
}
