package schedule_maintenance

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

type VehicleService interface {
	ScheduleMaintenance(ctx context.Context, id string, intervalDays int) (*models.MaintenanceScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
