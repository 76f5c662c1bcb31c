package get_service_center

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers"
)

const msgNotFound = "сервисный центр не найден"

type Handler struct {
	service ServiceCenterService
	logger  Logger
}

func NewHandler(service ServiceCenterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/service-centers/{centerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	center, err := h.service.GetByID(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrServiceCenterNotFound):
			h.logger.Warn("GET /service-centers/{id} - Service center not found: service_center_id=%s", centerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /service-centers/{id} - Failed to get service center: service_center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /service-centers/{id} - Service center retrieved successfully: service_center_id=%s", centerID)
	handlers.RespondJSON(w, http.StatusOK, center)
}
