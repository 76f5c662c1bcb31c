package get_customer_vehicles

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

type VehicleService interface {
	ListByCustomer(ctx context.Context, customerID string) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
