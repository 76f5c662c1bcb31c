package complete_booking

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

// Request модель запроса на завершение обслуживания
type Request struct {
	BookingID  string  // ID бронирования
	ActualCost float64 // Итоговая стоимость выполненных работ
}

// Response модель ответа с завершенным бронированием
type Response struct {
	ID              string           // ID бронирования
	CustomerID      string           // ID клиента
	VehicleID       string           // ID автомобиля
	ServiceCenterID string           // ID сервисного центра
	ServiceType     string           // Тип услуги
	Status          string           // Статус бронирования (COMPLETED)
	BookingDate     time.Time        // Дата бронирования
	ScheduledTime   types.TimeString // Время записи
	EstimatedCost   *float64         // Оценка стоимости до выполнения
	ActualCost      *float64         // Итоговая стоимость
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время завершения
}
