package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Дату и время по политике записи проверяет lifecycle engine
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customer_id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceCenterID) == "" {
		return fmt.Errorf("%w: service_center_id is required", ErrInvalidInput)
	}

	if _, err := domain.ParseServiceType(req.ServiceType); err != nil {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if strings.TrimSpace(req.BookingDate) == "" {
		return fmt.Errorf("%w: booking_date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ScheduledTime) == "" {
		return fmt.Errorf("%w: scheduled_time is required", ErrInvalidInput)
	}

	return nil
}

// validateOwnership проверяет, что автомобиль принадлежит клиенту
func validateOwnership(vehicle *domain.Vehicle, customerID string) error {
	if vehicle.CustomerID != customerID {
		return ErrVehicleNotOwned
	}
	return nil
}

// validateCenterOffers проверяет, что сервисный центр оказывает услугу
func validateCenterOffers(center *domain.ServiceCenter, serviceType domain.ServiceType) error {
	if !center.OffersService(serviceType) {
		return ErrServiceNotOffered
	}
	return nil
}
