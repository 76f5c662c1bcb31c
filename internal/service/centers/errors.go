package centers

import "errors"

var (
	// ErrServiceCenterNotFound сервисный центр не найден
	ErrServiceCenterNotFound = errors.New("service center not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
