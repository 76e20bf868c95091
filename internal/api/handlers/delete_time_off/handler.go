package delete_time_off

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/schedule"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

const (
	msgInvalidID       = "некорректный ID"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgBarberNotFound  = "барбер не найден"
	msgTimeOffNotFound = "период отсутствия не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/barbers/{barberId}/time-off/{timeOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	timeOffID, err := handlers.PathInt64(r, "timeOffId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.DeleteTimeOff(r.Context(), &models.DeleteTimeOffRequest{
		UserID:    userID,
		BarberID:  barberID,
		TimeOffID: timeOffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrTimeOffNotFound):
			handlers.RespondNotFound(w, msgTimeOffNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /barbers/{id}/time-off/{id} - Failed: barber_id=%d, time_off_id=%d, error=%v, request_id=%s",
				barberID, timeOffID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /barbers/{id}/time-off/{id} - Deleted time off id=%d for barber_id=%d", timeOffID, barberID)
	w.WriteHeader(http.StatusNoContent)
}
