package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

func TestIsSlotBooked(t *testing.T) {
	existing := []*domain.Booking{booking(monday, "10:00", "10:45", domain.StatusConfirmed)}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "ends exactly at booking start", start: "09:30", duration: 30, want: false},
		{name: "starts exactly at booking end", start: "10:45", duration: 30, want: false},
		{name: "overlaps booking start", start: "09:45", duration: 30, want: true},
		{name: "inside booking", start: "10:15", duration: 15, want: true},
		{name: "covers booking", start: "09:00", duration: 180, want: true},
		{name: "overlaps booking end", start: "10:30", duration: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSlotBooked(types.TimeString(tt.start), testBarberID, tt.duration, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotBooked_OverlapSymmetry(t *testing.T) {
	starts := []int{540, 555, 570, 600, 615, 660}
	durations := []int{15, 30, 45, 60}

	for _, t1 := range starts {
		for _, d1 := range durations {
			for _, t2 := range starts {
				for _, d2 := range durations {
					s1, _ := types.NewTimeStringFromMinutes(t1)
					e1, _ := types.NewTimeStringFromMinutes(t1 + d1)
					s2, _ := types.NewTimeStringFromMinutes(t2)

					got, err := IsSlotBooked(s2, testBarberID, d2, []*domain.Booking{
						booking(monday, s1.String(), e1.String(), domain.StatusPending),
					})
					require.NoError(t, err)

					want := t1 < t2+d2 && t2 < t1+d1
					assert.Equal(t, want, got, "[%d,+%d) vs [%d,+%d)", t1, d1, t2, d2)
				}
			}
		}
	}
}

func TestIsSlotBooked_IgnoresCancelledAndOtherBarbers(t *testing.T) {
	other := booking(monday, "10:00", "11:00", domain.StatusConfirmed)
	other.BarberID = testBarberID + 1

	bookings := []*domain.Booking{
		booking(monday, "10:00", "11:00", domain.StatusCancelled),
		other,
	}

	got, err := IsSlotBooked("10:00", testBarberID, 60, bookings)
	require.NoError(t, err)
	assert.False(t, got)

	noShow := []*domain.Booking{booking(monday, "10:00", "11:00", domain.StatusNoShow)}
	got, err = IsSlotBooked("10:30", testBarberID, 30, noShow)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsSlotBooked_Validation(t *testing.T) {
	_, err := IsSlotBooked("9:00", testBarberID, 30, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = IsSlotBooked("09:00", testBarberID, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = IsSlotBooked("23:45", testBarberID, 30, nil)
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)

	_, err = IsSlotBooked("09:00", testBarberID, 30, []*domain.Booking{booking(monday, "xx", "10:00", domain.StatusConfirmed)})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "booking start time", vErr.Field)
}
