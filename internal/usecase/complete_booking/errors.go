package complete_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("complete_booking: booking not found")

	// ErrCustomerNotFound возвращается, когда клиент бронирования не найден
	ErrCustomerNotFound = errors.New("complete_booking: customer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_booking: internal error")
)
