package domain

// Slot grid
const (
	SlotStepMinutes = 15 // candidate start times are 15-minute aligned
)

// Defaults
const (
	DefaultPastSlotBufferMinutes   = 15
	DefaultMaxRecurringOccurrences = 52
)

// Business validation constants
const (
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxTimeOffReasonLength      = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Reasons reported for unavailable recurring occurrences
const (
	ReasonNotWorkingDay = "Barber not available on this day"
	ReasonTimeOff       = "Barber has time off"
	ReasonSlotBooked    = "Time slot already booked"
	ReasonOutsideHours  = "Time slot outside working hours"
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
