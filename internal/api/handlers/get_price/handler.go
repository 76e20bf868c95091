package get_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	getPrice "github.com/m04kA/barbershop-booking/internal/usecase/get_price"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

const (
	msgInvalidBarberID  = "некорректный ID барбера"
	msgInvalidServiceID = "некорректный или отсутствующий ID услуги"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgBarberNotFound   = "барбер не найден"
	msgServiceNotFound  = "услуга не найдена"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	BarberID   int64   `json:"barberId"`
	ServiceID  int64   `json:"serviceId"`
	Time       string  `json:"time"`
	Price      float64 `json:"price"`
	TimePeriod string  `json:"timePeriod"`
	IsFallback bool    `json:"isFallback"`
}

type Handler struct {
	useCase GetPriceUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/price
// Query params: serviceId (required), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathInt64(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/price - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/price - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	at, err := types.NewTimeStringFromString(r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/price - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getPrice.Request{BarberID: barberID, ServiceID: serviceID, Time: at})
	if err != nil {
		switch {
		case errors.Is(err, getPrice.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getPrice.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getPrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /barbers/{id}/price - Failed to get price: barber_id=%d, service_id=%d, error=%v, request_id=%s",
				barberID, serviceID, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &PriceResponse{
		BarberID:   result.BarberID,
		ServiceID:  result.ServiceID,
		Time:       result.Time.String(),
		Price:      result.Price,
		TimePeriod: string(result.TimePeriod),
		IsFallback: result.IsFallback,
	})
}
