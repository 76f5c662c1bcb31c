package get_booking_reports

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/reports/models"
)

type ReportService interface {
	Summary(ctx context.Context) (*models.SummaryResponse, error)
	Monthly(ctx context.Context, year int, month int) (*models.MonthlyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
