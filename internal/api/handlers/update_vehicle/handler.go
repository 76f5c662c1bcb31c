package update_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные автомобиля"
	msgNotFound           = "автомобиль не найден"
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

// Handle PUT /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vehicleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{id} - Invalid request data: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /vehicles/{id} - Failed to update vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated successfully: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
