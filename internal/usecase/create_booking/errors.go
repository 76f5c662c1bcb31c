package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotOwned возвращается, когда автомобиль принадлежит другому клиенту
	ErrVehicleNotOwned = errors.New("create_booking: vehicle does not belong to customer")

	// ErrServiceCenterNotFound возвращается, когда сервисный центр не найден
	ErrServiceCenterNotFound = errors.New("create_booking: service center not found")

	// ErrServiceNotOffered возвращается, когда сервисный центр не оказывает услугу
	ErrServiceNotOffered = errors.New("create_booking: service center does not offer this service")

	// ErrInvalidDate возвращается при некорректной дате или времени бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
