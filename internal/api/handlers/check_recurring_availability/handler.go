package check_recurring_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	checkRecurring "github.com/m04kA/barbershop-booking/internal/usecase/check_recurring_availability"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgBarberNotFound     = "барбер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidStartDate   = "серия не может начинаться в прошлом"
	msgInvalidInput       = "некорректные параметры серии"
)

type Handler struct {
	useCase CheckRecurringAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckRecurringAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbers/{barberId}/recurring-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req CheckRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/recurring-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(barberID)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/recurring-availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkRecurring.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, checkRecurring.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, checkRecurring.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidStartDate)

		case errors.Is(err, checkRecurring.ErrInvalidInput):
			h.logger.Warn("POST /barbers/{id}/recurring-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbers/{id}/recurring-availability - Failed: barber_id=%d, error=%v, request_id=%s",
				barberID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/recurring-availability - barber_id=%d, available=%d/%d",
		barberID, result.AvailableCount, len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
