package create_recurring_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	createRecurring "github.com/m04kA/barbershop-booking/internal/usecase/create_recurring_bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgBarberNotFound     = "барбер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidStartDate   = "серия не может начинаться в прошлом"
	msgNoAvailableDates   = "ни одна дата серии недоступна"
	msgSlotTaken          = "один из слотов серии занят параллельно, повторите запрос"
	msgInvalidInput       = "некорректные параметры серии"
)

type Handler struct {
	useCase CreateRecurringBookingsUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/recurring
// Недоступные даты пропускаются и возвращаются в поле skipped
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/recurring - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRecurring.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createRecurring.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createRecurring.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidStartDate)

		case errors.Is(err, createRecurring.ErrInvalidInput):
			h.logger.Warn("POST /bookings/recurring - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createRecurring.ErrNoAvailableDates):
			handlers.RespondConflict(w, msgNoAvailableDates)

		case errors.Is(err, createRecurring.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings/recurring - Failed: user_id=%d, barber_id=%d, error=%v, request_id=%s",
				userID, req.BarberID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/recurring - series=%s created=%d skipped=%d, user_id=%d",
		result.SeriesID, len(result.Created), len(result.Skipped), userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
