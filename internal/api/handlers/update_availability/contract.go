package update_availability

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceAvailability(ctx context.Context, req *models.ReplaceAvailabilityRequest) ([]models.AvailabilityBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
