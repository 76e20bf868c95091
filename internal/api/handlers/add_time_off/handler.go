package add_time_off

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/schedule"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBarberNotFound     = "барбер не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректный период отсутствия"
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

// Handle POST /api/v1/barbers/{barberId}/time-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.AddTimeOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/time-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.BarberID = barberID

	result, err := h.service.AddTimeOff(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /barbers/{id}/time-off - %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /barbers/{id}/time-off - Failed: barber_id=%d, error=%v, request_id=%s",
				barberID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/time-off - Created time off id=%d for barber_id=%d", result.ID, barberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
