package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings"
)

const (
	msgNotFound         = "бронирование не найдено"
	msgCustomerNotFound = "клиент бронирования не найден"
	msgCannotCancel     = "бронирование не может быть отменено в текущем статусе"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		var transitionErr *domain.TransitionError
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCustomerNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Customer not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.As(err, &transitionErr):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%s, status=%s",
				bookingID, transitionErr.From)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
