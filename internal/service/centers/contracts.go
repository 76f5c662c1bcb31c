package centers

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

// ServiceCenterRepository интерфейс репозитория сервисных центров
type ServiceCenterRepository interface {
	Create(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceCenter, error)
	List(ctx context.Context, city *string, serviceType *domain.ServiceType) ([]*domain.ServiceCenter, error)
	Update(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
// Используется для построения отчета о загрузке центра
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
