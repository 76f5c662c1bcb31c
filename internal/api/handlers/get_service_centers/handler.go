package get_service_centers

import (
	"net/http"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

const msgInvalidServiceType = "некорректный тип услуги"

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

// Handle GET /api/v1/service-centers
// Query params: city, service_type (опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var city *string
	if v := r.URL.Query().Get("city"); v != "" {
		city = &v
	}

	var serviceType *domain.ServiceType
	if v := r.URL.Query().Get("service_type"); v != "" {
		parsed, err := domain.ParseServiceType(v)
		if err != nil {
			h.logger.Warn("GET /service-centers - Invalid service type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceType)
			return
		}
		serviceType = &parsed
	}

	result, err := h.service.List(r.Context(), city, serviceType)
	if err != nil {
		h.logger.Error("GET /service-centers - Failed to list service centers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-centers - Service centers retrieved successfully: count=%d",
		len(result.ServiceCenters))
	handlers.RespondJSON(w, http.StatusOK, result.ServiceCenters)
}
