package delete_customer

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

// Handle DELETE /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	err := h.service.Delete(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("DELETE /customers/{id} - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /customers/{id} - Failed to delete customer: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /customers/{id} - Customer deleted successfully: customer_id=%s", customerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
