package vehicles

import "errors"

var (
	// ErrVehicleNotFound автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrCustomerNotFound владелец не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
