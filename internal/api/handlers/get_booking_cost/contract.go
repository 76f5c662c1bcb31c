package get_booking_cost

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/bookings/models"
)

type BookingService interface {
	EstimateCost(ctx context.Context, id string, req *models.EstimateCostRequest) (*models.CostEstimateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
