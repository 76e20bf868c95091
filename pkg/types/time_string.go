package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	timeLayout    = "15:04"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток (после 24:00)
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString is a wall-clock time in "HH:MM" form without a timezone.
// "24:00" is accepted only as an end-of-day bound.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(strings.TrimSpace(s))
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight back to "HH:MM".
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// MustTimeString is intended for constants and tests.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hours, ok := twoDigits(parts[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	minutes, ok := twoDigits(parts[1])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, string(t))
	}

	return total, nil
}

// twoDigits разбирает ровно две ASCII-цифры, без знака и пробелов
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// IsZero returns true for an empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// AddMinutes returns t shifted by delta minutes. The result must stay within [00:00, 24:00].
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + delta)
}

// IsBefore сравнивает время; некорректные значения никогда не считаются меньшими
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter сравнивает время; некорректные значения никогда не считаются большими
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Format12Hour renders the time as "h:MM AM/PM". Hours 0 and 12 are shown as 12,
// and 12:00 is PM.
func (t TimeString) Format12Hour() (string, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}

	hours := (m / 60) % 24
	minutes := m % 60

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix), nil
}

// CalculateEndTime returns start + durationMinutes as "HH:MM".
// End times past 24:00 are rejected with ErrTimeOutOfRange.
func CalculateEndTime(start TimeString, durationMinutes int) (TimeString, error) {
	return start.AddMinutes(durationMinutes)
}

// Scan implements sql.Scanner for Postgres TIME columns ("10:00:00" or time.Time).
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
