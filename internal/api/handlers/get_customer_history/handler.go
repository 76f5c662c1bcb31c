package get_customer_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers"
)

const msgNotFound = "клиент не найден"

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/service-history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	history, err := h.service.History(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{id}/service-history - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /customers/{id}/service-history - Failed to build history: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/service-history - History retrieved successfully: customer_id=%s, total_services=%d",
		customerID, history.TotalServices)
	handlers.RespondJSON(w, http.StatusOK, history)
}
