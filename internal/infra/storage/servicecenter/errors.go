package servicecenter

import "errors"

var (
	// ErrServiceCenterNotFound возвращается, когда сервисный центр не найден
	ErrServiceCenterNotFound = errors.New("servicecenter.repository: service center not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicecenter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicecenter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicecenter.repository: failed to scan row")
)
