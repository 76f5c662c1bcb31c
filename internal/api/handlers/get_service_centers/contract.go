package get_service_centers

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

type ServiceCenterService interface {
	List(ctx context.Context, city *string, serviceType *domain.ServiceType) (*models.ServiceCenterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
