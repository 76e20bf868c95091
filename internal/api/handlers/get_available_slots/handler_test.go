package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func serve(uc *mockUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/barbers/{barberId}/available-slots", NewHandler(uc, noopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{BarberID: 7, ServiceID: 3, Date: date}).
		Return(&getAvailableSlots.Response{
			Date:            date,
			BarberID:        7,
			ServiceID:       3,
			DurationMinutes: 30,
			Available:       true,
			Slots: []getAvailableSlots.Slot{{
				StartTime:   "17:30",
				EndTime:     "18:00",
				DisplayTime: "5:30 PM",
				Price:       35,
				TimePeriod:  domain.PeriodEvening,
			}},
		}, nil)

	rec := serve(uc, "/api/v1/barbers/7/available-slots?serviceId=3&date=2024-01-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2024-01-01", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "5:30 PM", resp.Slots[0].DisplayTime)
	assert.Equal(t, "evening", resp.Slots[0].TimePeriod)
}

func TestHandle_NotWorkingDayIsOK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Available: false,
		Reason:    domain.ReasonTimeOff,
	}, nil)

	rec := serve(uc, "/api/v1/barbers/7/available-slots?serviceId=3&date=2024-01-01")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "barber id", url: "/api/v1/barbers/abc/available-slots?serviceId=3&date=2024-01-01"},
		{name: "missing service", url: "/api/v1/barbers/7/available-slots?date=2024-01-01"},
		{name: "missing date", url: "/api/v1/barbers/7/available-slots?serviceId=3"},
		{name: "bad date", url: "/api/v1/barbers/7/available-slots?serviceId=3&date=2024-13-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(uc, tt.url)
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
		{err: getAvailableSlots.ErrBarberNotFound, code: http.StatusNotFound},
		{err: getAvailableSlots.ErrServiceNotFound, code: http.StatusNotFound},
		{err: getAvailableSlots.ErrInvalidInput, code: http.StatusBadRequest},
		{err: getAvailableSlots.ErrInternal, code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: boom", tt.err))

			rec := serve(uc, "/api/v1/barbers/7/available-slots?serviceId=3&date=2024-01-01")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
