package add_time_off

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/schedule"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) AddTimeOff(ctx context.Context, req *models.AddTimeOffRequest) (*models.TimeOffResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimeOffResponse), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const body = `{"startDate":"2024-01-08","endDate":"2024-01-14","reason":"отпуск"}`

func serve(svc *mockService, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/barbers/{barberId}/time-off", NewHandler(svc, noopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "100")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	reason := "отпуск"
	svc := &mockService{}
	svc.On("AddTimeOff", mock.Anything, mock.MatchedBy(func(req *models.AddTimeOffRequest) bool {
		return req.UserID == 100 && req.BarberID == 7 &&
			req.StartDate == "2024-01-08" && req.EndDate == "2024-01-14" &&
			req.Reason != nil && *req.Reason == reason
	})).Return(&models.TimeOffResponse{ID: 11, BarberID: 7, StartDate: "2024-01-08", EndDate: "2024-01-14", Reason: &reason}, nil)

	rec := serve(svc, "/api/v1/barbers/7/time-off", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.TimeOffResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2024-01-14", resp.EndDate)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "invalid range", err: schedule.ErrInvalidInput, code: http.StatusBadRequest, msg: msgInvalidData},
		{name: "not owner", err: schedule.ErrAccessDenied, code: http.StatusForbidden, msg: msgForbidden},
		{name: "no barber", err: schedule.ErrBarberNotFound, code: http.StatusNotFound, msg: msgBarberNotFound},
		{name: "internal", err: schedule.ErrInternal, code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("AddTimeOff", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: AddTimeOff", tt.err))

			rec := serve(svc, "/api/v1/barbers/7/time-off", body)
			assert.Equal(t, tt.code, rec.Code)
			if tt.msg != "" {
				assert.Contains(t, rec.Body.String(), tt.msg)
			}
		})
	}
}

func TestHandle_BadPathOrBody(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/barbers/0/time-off", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/barbers/7/time-off", `{"startDate":1}`).Code)
	svc.AssertNotCalled(t, "AddTimeOff", mock.Anything, mock.Anything)
}
