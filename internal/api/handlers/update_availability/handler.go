package update_availability

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
	msgInvalidData        = "некорректные блоки расписания"
	msgOverlap            = "блоки расписания пересекаются"
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

// Handle PUT /api/v1/barbers/{barberId}/availability
// Полностью заменяет недельное расписание барбера
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ReplaceAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.BarberID = barberID

	result, err := h.service.ReplaceAvailability(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /barbers/{id}/availability - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrOverlappingBlocks):
			h.logger.Warn("PUT /barbers/{id}/availability - %v", err)
			handlers.RespondBadRequest(w, msgOverlap)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id}/availability - %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /barbers/{id}/availability - Failed: barber_id=%d, error=%v, request_id=%s",
				barberID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id}/availability - Availability replaced: barber_id=%d, blocks=%d", barberID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
