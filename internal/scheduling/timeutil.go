package scheduling

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

var errNonPositiveDuration = errors.New("duration must be positive")

// interval is a half-open [start, end) range in minutes since midnight
type interval struct {
	start int
	end   int
}

func (i interval) overlaps(other interval) bool {
	return i.start < other.end && i.end > other.start
}

func toMinutes(field string, t types.TimeString) (int, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, invalid(field, t.String(), err)
	}
	return m, nil
}

// slotInterval returns [start, start+duration); the end must not pass 24:00
func slotInterval(start types.TimeString, durationMinutes int) (interval, error) {
	if durationMinutes <= 0 {
		return interval{}, invalid("duration", strconv.Itoa(durationMinutes), errNonPositiveDuration)
	}
	s, err := toMinutes("start time", start)
	if err != nil {
		return interval{}, err
	}
	if _, err := types.NewTimeStringFromMinutes(s + durationMinutes); err != nil {
		return interval{}, invalid("start time", fmt.Sprintf("%s+%dm", start, durationMinutes), err)
	}
	return interval{start: s, end: s + durationMinutes}, nil
}

func blockInterval(start, end types.TimeString) (interval, error) {
	s, err := toMinutes("block start", start)
	if err != nil {
		return interval{}, err
	}
	e, err := toMinutes("block end", end)
	if err != nil {
		return interval{}, err
	}
	return interval{start: s, end: e}, nil
}
