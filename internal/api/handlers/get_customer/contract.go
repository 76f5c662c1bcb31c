package get_customer

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
)

type CustomerService interface {
	GetByID(ctx context.Context, id string) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
