package get_customer_history

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
)

type CustomerService interface {
	History(ctx context.Context, customerID string) (*models.ServiceHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
