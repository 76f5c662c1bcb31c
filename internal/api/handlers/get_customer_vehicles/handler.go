package get_customer_vehicles

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	result, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/{id}/vehicles - Failed to list vehicles: customer_id=%s, error=%v",
			customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{id}/vehicles - Vehicles retrieved successfully: customer_id=%s, count=%d",
		customerID, len(result.Vehicles))
	handlers.RespondJSON(w, http.StatusOK, result.Vehicles)
}
