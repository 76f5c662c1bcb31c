package create_vehicle

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

type VehicleService interface {
	Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
