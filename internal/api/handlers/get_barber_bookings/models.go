package get_barber_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задаёт один день; from/to задают период и игнорируются, если указан date.
func ToServiceRequest(
	barberID int64,
	userID int64,
	statusStr string,
	dateStr string,
	fromStr string,
	toStr string,
	includeCancelledStr string,
) (*models.GetBarberBookingsRequest, error) {
	req := &models.GetBarberBookingsRequest{
		UserID:   userID,
		BarberID: barberID,
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if fromStr != "" {
			from, err := time.Parse(domain.DateFormat, fromStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &from
		}
		if toStr != "" {
			to, err := time.Parse(domain.DateFormat, toStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &to
		}
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
