package upsert_pricing

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertPricing(ctx context.Context, req *models.UpsertPricingRequest) ([]models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
