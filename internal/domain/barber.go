package domain

import "github.com/m04kA/barbershop-booking/pkg/types"

// Barber is a staff member whose calendar is booked.
// The evening window is barber-specific and must not wrap past midnight.
type Barber struct {
	ID                int64
	UserID            int64 // staff account that manages this barber's schedule
	Name              string
	RegularHoursStart types.TimeString
	RegularHoursEnd   types.TimeString
	EveningHoursStart types.TimeString
	EveningHoursEnd   types.TimeString
}

// IsManagedBy returns true if the user may manage this barber's schedule and bookings
func (b *Barber) IsManagedBy(userID int64) bool {
	return b.UserID == userID
}

// Service is a bookable service such as a haircut or a beard trim
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	BasePrice       float64
}
