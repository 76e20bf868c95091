package get_barber_bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	t.Run("single date wins over range", func(t *testing.T) {
		req, err := ToServiceRequest(7, 100, "", "2024-01-01", "2023-12-01", "2024-02-01", "")
		require.NoError(t, err)

		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NotNil(t, req.StartDate)
		assert.Equal(t, day, *req.StartDate)
		assert.Equal(t, day, *req.EndDate)
		assert.False(t, req.IncludeCancelled)
		assert.Nil(t, req.Status)
	})

	t.Run("open range with filters", func(t *testing.T) {
		req, err := ToServiceRequest(7, 100, "confirmed", "", "2024-01-01", "", "true")
		require.NoError(t, err)

		require.NotNil(t, req.StartDate)
		assert.Nil(t, req.EndDate)
		assert.Equal(t, "confirmed", *req.Status)
		assert.True(t, req.IncludeCancelled)
		assert.Equal(t, int64(100), req.UserID)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ToServiceRequest(7, 100, "", "01/01/2024", "", "", "")
		assert.Error(t, err)

		_, err = ToServiceRequest(7, 100, "", "", "", "2024-02-30", "")
		assert.Error(t, err)

		_, err = ToServiceRequest(7, 100, "", "", "", "", "yes please")
		assert.Error(t, err)
	})
}
