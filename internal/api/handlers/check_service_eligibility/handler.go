package check_service_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
)

const (
	msgInvalidServiceType = "некорректный тип услуги"
	msgInvalidMileage     = "некорректное значение пробега"
	msgInvalidParams      = "некорректные параметры запроса"
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

// Handle GET /api/v1/vehicles/{vehicleId}/service-eligibility
// Query params: service_type (обязателен), last_service_mileage (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	serviceType, err := domain.ParseServiceType(r.URL.Query().Get("service_type"))
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/service-eligibility - Invalid service type: vehicle_id=%s, error=%v",
			vehicleID, err)
		handlers.RespondBadRequest(w, msgInvalidServiceType)
		return
	}

	lastServiceMileage := 0
	if v := r.URL.Query().Get("last_service_mileage"); v != "" {
		lastServiceMileage, err = strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/service-eligibility - Invalid mileage: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidMileage)
			return
		}
	}

	result, err := h.service.Eligibility(r.Context(), vehicleID, serviceType, lastServiceMileage)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/service-eligibility - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/service-eligibility - Invalid parameters: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vehicles/{id}/service-eligibility - Failed to check eligibility: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/service-eligibility - Eligibility checked successfully: vehicle_id=%s, eligible=%t",
		vehicleID, result.IsEligible)
	handlers.RespondJSON(w, http.StatusOK, result)
}
