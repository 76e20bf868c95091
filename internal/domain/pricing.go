package domain

// TimePeriod is the pricing period a clock time falls into
type TimePeriod string

const (
	PeriodRegular TimePeriod = "regular"
	PeriodEvening TimePeriod = "evening"
)

// IsValid returns true for a known period
func (p TimePeriod) IsValid() bool {
	return p == PeriodRegular || p == PeriodEvening
}

// BarberServicePricing is the price of a service with a barber in a given period.
// (BarberID, ServiceID, TimePeriod) is unique in storage.
type BarberServicePricing struct {
	ID         int64
	BarberID   int64
	ServiceID  int64
	TimePeriod TimePeriod
	Price      float64
}
