package update_service_center

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные сервисного центра"
	msgNotFound           = "сервисный центр не найден"
)

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

// Handle PUT /api/v1/service-centers/{centerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID := vars["centerId"]

	var req models.UpdateServiceCenterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /service-centers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), centerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrServiceCenterNotFound):
			h.logger.Warn("PUT /service-centers/{id} - Service center not found: service_center_id=%s", centerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, centers.ErrInvalidInput):
			h.logger.Warn("PUT /service-centers/{id} - Invalid request data: service_center_id=%s, error=%v",
				centerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /service-centers/{id} - Failed to update service center: service_center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /service-centers/{id} - Service center updated successfully: service_center_id=%s", centerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
