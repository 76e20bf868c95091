package scheduling

import (
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// GetTimePeriod classifies t as evening when eveningStart <= t < eveningEnd,
// otherwise as regular. Regular hours are not consulted: any time outside the
// evening window is priced as regular. A barber without an evening window is
// always regular.
func GetTimePeriod(t types.TimeString, barber *domain.Barber) (domain.TimePeriod, error) {
	m, err := toMinutes("time", t)
	if err != nil {
		return "", err
	}

	if barber == nil || barber.EveningHoursStart.IsZero() || barber.EveningHoursEnd.IsZero() {
		return domain.PeriodRegular, nil
	}

	window, err := blockInterval(barber.EveningHoursStart, barber.EveningHoursEnd)
	if err != nil {
		return "", err
	}

	if window.start <= m && m < window.end {
		return domain.PeriodEvening, nil
	}
	return domain.PeriodRegular, nil
}

type pricingKey struct {
	barberID  int64
	serviceID int64
	period    domain.TimePeriod
}

// PricingIndex is a lookup table over one pricing snapshot
type PricingIndex struct {
	prices map[pricingKey]float64
}

// NewPricingIndex indexes rows by (barber, service, period). When a key repeats,
// the first row wins.
func NewPricingIndex(rows []*domain.BarberServicePricing) *PricingIndex {
	idx := &PricingIndex{prices: make(map[pricingKey]float64, len(rows))}
	for _, row := range rows {
		if row == nil {
			continue
		}
		key := pricingKey{barberID: row.BarberID, serviceID: row.ServiceID, period: row.TimePeriod}
		if _, exists := idx.prices[key]; exists {
			continue
		}
		idx.prices[key] = row.Price
	}
	return idx
}

// Lookup returns the price row for the key, if any
func (idx *PricingIndex) Lookup(barberID, serviceID int64, period domain.TimePeriod) (float64, bool) {
	if idx == nil {
		return 0, false
	}
	price, ok := idx.prices[pricingKey{barberID: barberID, serviceID: serviceID, period: period}]
	return price, ok
}

func (idx *PricingIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.prices)
}

// PriceQuote is the resolved price of a service at a clock time
type PriceQuote struct {
	Amount     float64
	Period     domain.TimePeriod
	IsFallback bool // no pricing row matched; Amount is the fallback
}

// CalculatePrice resolves the period of t for the barber and returns the matching
// price row, or fallback when the table has no row for it.
func CalculatePrice(
	barberID int64,
	serviceID int64,
	t types.TimeString,
	barber *domain.Barber,
	index *PricingIndex,
	fallback float64,
) (PriceQuote, error) {
	period, err := GetTimePeriod(t, barber)
	if err != nil {
		return PriceQuote{}, err
	}

	if price, ok := index.Lookup(barberID, serviceID, period); ok {
		return PriceQuote{Amount: price, Period: period}, nil
	}

	return PriceQuote{Amount: fallback, Period: period, IsFallback: true}, nil
}
