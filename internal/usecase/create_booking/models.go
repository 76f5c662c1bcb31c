package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID      string  // ID клиента
	VehicleID       string  // ID автомобиля
	ServiceCenterID string  // ID сервисного центра
	ServiceType     string  // Тип услуги (например, "OIL_CHANGE")
	BookingDate     string  // Дата бронирования "2025-10-15"
	ScheduledTime   string  // Время записи "14:30"
	Notes           *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	CustomerID      string           // ID клиента
	VehicleID       string           // ID автомобиля
	ServiceCenterID string           // ID сервисного центра
	ServiceType     string           // Тип услуги
	Status          string           // Статус бронирования
	BookingDate     time.Time        // Дата бронирования
	ScheduledTime   types.TimeString // Время записи
	EstimatedCost   *float64         // Оценка стоимости по прайсу
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
