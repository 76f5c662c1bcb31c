package create_service_center

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

type ServiceCenterService interface {
	Create(ctx context.Context, req *models.CreateServiceCenterRequest) (*models.ServiceCenterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
