package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные клиента"
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrEmailAlreadyExists):
			h.logger.Warn("POST /customers - Email already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid request data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /customers - Failed to create customer: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created successfully: customer_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
