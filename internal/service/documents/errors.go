package documents

import "errors"

var (
	// ErrDocumentNotFound документ не найден
	ErrDocumentNotFound = errors.New("document not found")

	// ErrOwnerNotFound владелец документа не найден
	ErrOwnerNotFound = errors.New("document owner not found")

	// ErrInvalidInput невалидные данные запроса
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
