package get_booking_cost

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgNotFound      = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}/cost
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/cost - Invalid query parameters: booking_id=%s, error=%v",
			bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.EstimateCost(r.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/cost - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/cost - Invalid parameters: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /bookings/{id}/cost - Failed to estimate cost: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/cost - Cost estimated successfully: booking_id=%s, total=%.2f",
		bookingID, result.EstimatedTotal)
	handlers.RespondJSON(w, http.StatusOK, result)
}
