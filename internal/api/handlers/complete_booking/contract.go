package complete_booking

import (
	"context"

	completeBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/complete_booking"
)

type CompleteBookingUseCase interface {
	Execute(ctx context.Context, req *completeBooking.Request) (*completeBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
