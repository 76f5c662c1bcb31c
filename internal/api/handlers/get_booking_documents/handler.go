package get_booking_documents

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents"
)

const msgBookingNotFound = "бронирование не найдено"

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.service.List(r.Context(), domain.CategoryServiceReport, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrOwnerNotFound):
			h.logger.Warn("GET /bookings/{id}/documents - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/documents - Failed to list documents: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/documents - Documents retrieved successfully: booking_id=%s, count=%d",
		bookingID, len(result.Documents))
	handlers.RespondJSON(w, http.StatusOK, result.Documents)
}
