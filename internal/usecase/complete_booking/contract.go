package complete_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// BookingRepository интерфейс репозитория бронирований
// GetByID внутри транзакции блокирует строку (FOR UPDATE)
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Complete(ctx context.Context, id string, status domain.BookingStatus, actualCost float64) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Dispatcher интерфейс отправки side-effect intent'ов после коммита
type Dispatcher interface {
	Dispatch(ctx context.Context, intents []lifecycle.Intent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
