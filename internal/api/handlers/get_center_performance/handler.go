package get_center_performance

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

// Handle GET /api/v1/service-centers/{centerId}/performance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	report, err := h.service.Performance(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrServiceCenterNotFound):
			h.logger.Warn("GET /service-centers/{id}/performance - Service center not found: service_center_id=%s",
				centerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /service-centers/{id}/performance - Failed to build report: service_center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /service-centers/{id}/performance - Report built successfully: service_center_id=%s, total_bookings=%d",
		centerID, report.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, report)
}
