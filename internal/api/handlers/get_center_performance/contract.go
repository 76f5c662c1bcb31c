package get_center_performance

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

type ServiceCenterService interface {
	Performance(ctx context.Context, id string) (*models.PerformanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
