package complete_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: booking_id is required", ErrInvalidInput)
	}

	if req.ActualCost < 0 {
		return fmt.Errorf("%w: actual cost cannot be negative", ErrInvalidInput)
	}

	return nil
}
