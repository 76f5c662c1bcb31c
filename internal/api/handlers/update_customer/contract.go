package update_customer

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
)

type CustomerService interface {
	Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
