package create_service_center

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные сервисного центра"
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

// Handle POST /api/v1/service-centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceCenterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-centers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrInvalidInput):
			h.logger.Warn("POST /service-centers - Invalid request data: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /service-centers - Failed to create service center: name=%s, error=%v",
				req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-centers - Service center created successfully: service_center_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
