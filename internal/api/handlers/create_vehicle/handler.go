package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные автомобиля"
	msgCustomerNotFound   = "клиент не найден"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrCustomerNotFound):
			h.logger.Warn("POST /vehicles - Customer not found: customer_id=%s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid request data: customer_id=%s, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: customer_id=%s, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%s, customer_id=%s",
		result.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
