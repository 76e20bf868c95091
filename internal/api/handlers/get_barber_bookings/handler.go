package get_barber_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/bookings"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgBarberNotFound  = "барбер не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/bookings
// Query params: date | from, to, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/bookings - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(barberID, userID, q.Get("status"), q.Get("date"), q.Get("from"), q.Get("to"), q.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Сервис сам проверит права сотрудника
	result, err := h.service.GetBarberBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /barbers/{id}/bookings - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbers/{id}/bookings - Failed to get bookings: barber_id=%d, error=%v, request_id=%s",
				barberID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/bookings - Bookings retrieved successfully: barber_id=%d, count=%d",
		barberID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
