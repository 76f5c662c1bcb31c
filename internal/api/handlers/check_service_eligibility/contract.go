package check_service_eligibility

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

type VehicleService interface {
	Eligibility(ctx context.Context, id string, serviceType domain.ServiceType, lastServiceMileage int) (*models.EligibilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
