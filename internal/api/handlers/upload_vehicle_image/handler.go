package upload_vehicle_image

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

// maxUploadBytes ограничивает размер загружаемого изображения
const maxUploadBytes = 10 << 20

const (
	msgInvalidFile     = "некорректный файл, ожидается multipart поле file"
	msgInvalidDocument = "некорректные данные изображения"
	msgVehicleNotFound = "автомобиль не найден"
)

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/images - Invalid upload: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/images - Failed to read file: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}

	result, err := h.service.Upload(r.Context(), &models.UploadDocumentRequest{
		Category: domain.CategoryVehicleImage,
		OwnerID:  vehicleID,
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrOwnerNotFound):
			h.logger.Warn("POST /vehicles/{id}/images - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, documents.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/{id}/images - Invalid image: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidDocument)

		default:
			h.logger.Error("POST /vehicles/{id}/images - Failed to upload image: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/images - Image uploaded successfully: vehicle_id=%s, key=%s, size=%d",
		vehicleID, result.Key, result.SizeBytes)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
