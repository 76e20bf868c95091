package create_recurring_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/domain"
	createRecurring "github.com/m04kA/barbershop-booking/internal/usecase/create_recurring_bookings"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createRecurring.Request) (*createRecurring.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createRecurring.Response), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{"barberId":7,"serviceId":3,"startDate":"2024-01-01","startTime":"10:00","pattern":"biweekly","occurrences":3}`

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/recurring", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "10")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(uc, noopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_PartialSeries(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createRecurring.Request) bool {
		return req.CustomerID == 10 && req.Pattern == domain.PatternBiweekly && req.Occurrences == 3
	})).Return(&createRecurring.Response{
		SeriesID:       "series-1",
		RequestedCount: 3,
		Created: []createRecurring.CreatedBooking{
			{ID: 1, BookingDate: start, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusPending, Price: 20, TimePeriod: domain.PeriodRegular},
			{ID: 2, BookingDate: start.AddDate(0, 0, 28), StartTime: "10:00", EndTime: "10:30", Status: domain.StatusPending, Price: 20, TimePeriod: domain.PeriodRegular},
		},
		Skipped: []domain.DateAvailabilityResult{
			{Date: start.AddDate(0, 0, 14), DateString: "2024-01-15", Reason: domain.ReasonTimeOff},
		},
	}, nil)

	rec := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateRecurringResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "series-1", resp.SeriesID)
	assert.Equal(t, 2, resp.CreatedCount)
	assert.Equal(t, "2024-01-29", resp.Bookings[1].BookingDate)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, SkippedDate{Date: "2024-01-15", Reason: domain.ReasonTimeOff}, resp.Skipped[0])
}

func TestHandle_BadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    `[]`,
		"bad date":    strings.Replace(validBody, "2024-01-01", "tomorrow", 1),
		"bad time":    strings.Replace(validBody, "10:00", "10am", 1),
		"unknown key": `{"barberId":7,"weeks":4}`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(uc, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: createRecurring.ErrNoAvailableDates, code: http.StatusConflict},
		{err: createRecurring.ErrSlotNotAvailable, code: http.StatusConflict},
		{err: createRecurring.ErrBarberNotFound, code: http.StatusNotFound},
		{err: createRecurring.ErrInvalidDate, code: http.StatusBadRequest},
		{err: createRecurring.ErrInvalidInput, code: http.StatusBadRequest},
		{err: createRecurring.ErrInternal, code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: Execute", tt.err))

			rec := serve(uc, validBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
