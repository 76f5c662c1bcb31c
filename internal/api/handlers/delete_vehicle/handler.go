package delete_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
)

const msgNotFound = "автомобиль не найден"

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

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	err := h.service.Delete(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted successfully: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
