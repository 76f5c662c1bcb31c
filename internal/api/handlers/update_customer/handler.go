package update_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные клиента"
	msgNotFound           = "клиент не найден"
	msgEmailExists        = "клиент с таким email уже существует"
)

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

// Handle PUT /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /customers/{id} - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customers.ErrEmailAlreadyExists):
			h.logger.Warn("PUT /customers/{id} - Email already exists: customer_id=%s", customerID)
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /customers/{id} - Invalid request data: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /customers/{id} - Failed to update customer: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /customers/{id} - Customer updated successfully: customer_id=%s", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
