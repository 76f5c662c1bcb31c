package update_service_center

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

type ServiceCenterService interface {
	Update(ctx context.Context, id string, req *models.UpdateServiceCenterRequest) (*models.ServiceCenterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
