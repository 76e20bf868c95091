package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/bookings"
	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidIncludeSeries = "параметр includeSeries должен быть true или false"
	msgNotFound             = "бронирование не найдено"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
)

// BookingWithSeriesResponse бронирование вместе со всеми вхождениями его серии
type BookingWithSeriesResponse struct {
	*models.BookingResponse
	Series []models.BookingResponse `json:"series"`
}

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

// Handle GET /api/v1/bookings/{bookingId}
// Query params: includeSeries (optional, default false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	includeSeries := false
	if raw := r.URL.Query().Get("includeSeries"); raw != "" {
		includeSeries, err = strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidIncludeSeries)
			return
		}
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userID)
	if err != nil {
		h.respondError(w, r, err, bookingID, userID)
		return
	}

	if !includeSeries {
		handlers.RespondJSON(w, http.StatusOK, booking)
		return
	}

	series, err := h.service.GetSeries(r.Context(), bookingID, userID)
	if err != nil {
		h.respondError(w, r, err, bookingID, userID)
		return
	}

	h.logger.Info("GET /bookings/{id} - booking_id=%d with %d series entries, user_id=%d",
		bookingID, len(series.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, BookingWithSeriesResponse{
		BookingResponse: booking,
		Series:          series.Bookings,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, bookingID, userID int64) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("GET /bookings/{id} - Failed: booking_id=%d, error=%v, request_id=%s",
			bookingID, err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
	}
}
