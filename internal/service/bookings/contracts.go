package bookings

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// CustomerRepository интерфейс репозитория клиентов
// Используется для получения email получателя уведомлений
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
