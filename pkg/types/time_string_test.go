package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    int
		wantErr error
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:15", want: 555},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "past end of day", input: "24:15", wantErr: ErrTimeOutOfRange},
		{name: "missing padding", input: "9:15", wantErr: ErrInvalidTimeFormat},
		{name: "bad minutes", input: "10:75", wantErr: ErrInvalidTimeFormat},
		{name: "garbage", input: "ab:cd", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
		{name: "plus sign", input: "+1:00", wantErr: ErrInvalidTimeFormat},
		{name: "minus sign", input: "-1:00", wantErr: ErrInvalidTimeFormat},
		{name: "leading space", input: " 9:00", wantErr: ErrInvalidTimeFormat},
		{name: "signed minutes", input: "10:+5", wantErr: ErrInvalidTimeFormat},
		{name: "non-ascii digit", input: "1٠:00", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Minutes()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_ValidateRejectsSigns(t *testing.T) {
	for _, input := range []TimeString{"+1:00", "-1:00", " 9:00", "09:+1"} {
		assert.ErrorIs(t, input.Validate(), ErrInvalidTimeFormat, string(input))
	}
	assert.NoError(t, TimeString("01:00").Validate())
}

func TestCalculateEndTime(t *testing.T) {
	end, err := CalculateEndTime("09:45", 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), end)

	end, err = CalculateEndTime("23:30", 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)

	_, err = CalculateEndTime("23:45", 30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Format12Hour(t *testing.T) {
	tests := map[TimeString]string{
		"00:05": "12:05 AM",
		"09:30": "9:30 AM",
		"11:59": "11:59 AM",
		"12:00": "12:00 PM",
		"13:45": "1:45 PM",
		"23:00": "11:00 PM",
	}

	for input, want := range tests {
		got, err := input.Format12Hour()
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %s", input)
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:00").IsAfter("16:59"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:05:00")))
	assert.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(615)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}
