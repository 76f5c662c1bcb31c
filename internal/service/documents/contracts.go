package documents

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

// DocumentRepository интерфейс репозитория документов
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	GetByKey(ctx context.Context, key string) (*domain.Document, error)
	ListByOwner(ctx context.Context, category domain.DocumentCategory, ownerID string) ([]*domain.Document, error)
}

// BookingRepository интерфейс репозитория бронирований
// Используется для проверки владельца отчетов и счетов
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория автомобилей
// Используется для проверки владельца изображений
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
