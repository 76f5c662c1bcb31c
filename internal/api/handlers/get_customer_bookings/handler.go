package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings"
)

const msgInvalidStatus = "некорректный статус бронирования"

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

// Handle GET /api/v1/customers/{customerId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	result, err := h.service.ListByCustomer(r.Context(), customerID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/bookings - Invalid status filter: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/bookings - Failed to list bookings: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/bookings - Bookings retrieved successfully: customer_id=%s, count=%d",
		customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
