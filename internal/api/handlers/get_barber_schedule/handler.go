package get_barber_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/schedule"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgBarberNotFound  = "барбер не найден"
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

// Handle GET /api/v1/barbers/{barberId}/schedule
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/schedule - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), barberID)
	if err != nil {
		if errors.Is(err, schedule.ErrBarberNotFound) {
			handlers.RespondNotFound(w, msgBarberNotFound)
			return
		}
		h.logger.Error("GET /barbers/{id}/schedule - Failed to get schedule: barber_id=%d, error=%v, request_id=%s",
			barberID, err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers/{id}/schedule - Schedule retrieved: barber_id=%d, blocks=%d", barberID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
