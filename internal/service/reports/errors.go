package reports

import "errors"

var (
	// ErrInvalidInput невалидные параметры отчета
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
