package schedule_maintenance

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVehicleNotFound    = "автомобиль не найден"
	msgCustomerNotFound   = "владелец автомобиля не найден"
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

// Handle POST /api/v1/vehicles/{vehicleId}/maintenance-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	var req ScheduleMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/maintenance-schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ScheduleMaintenance(r.Context(), vehicleID, req.IntervalDays)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/maintenance-schedule - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, vehicles.ErrCustomerNotFound):
			h.logger.Warn("POST /vehicles/{id}/maintenance-schedule - Owner not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /vehicles/{id}/maintenance-schedule - Failed to schedule maintenance: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/maintenance-schedule - Maintenance scheduled successfully: vehicle_id=%s, rule_key=%s, interval_days=%d",
		vehicleID, result.RuleKey, result.IntervalDays)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
