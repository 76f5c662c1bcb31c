package vehicles

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRepository интерфейс репозитория клиентов
// Используется для проверки владельца и получения email для уведомлений
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Dispatcher интерфейс отправки side-effect intent'ов
type Dispatcher interface {
	Dispatch(ctx context.Context, intents []lifecycle.Intent)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
