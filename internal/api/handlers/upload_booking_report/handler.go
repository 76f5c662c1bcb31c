package upload_booking_report

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

// maxUploadBytes ограничивает размер загружаемого файла
const maxUploadBytes = 10 << 20

const (
	msgInvalidFile     = "некорректный файл, ожидается multipart поле file"
	msgInvalidDocument = "некорректные данные документа"
	msgBookingNotFound = "бронирование не найдено"
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

// Handle POST /api/v1/bookings/{bookingId}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/documents - Invalid upload: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/documents - Failed to read file: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}

	result, err := h.service.Upload(r.Context(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  bookingID,
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrOwnerNotFound):
			h.logger.Warn("POST /bookings/{id}/documents - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, documents.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/documents - Invalid document: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidDocument)

		default:
			h.logger.Error("POST /bookings/{id}/documents - Failed to upload report: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/documents - Report uploaded successfully: booking_id=%s, key=%s, size=%d",
		bookingID, result.Key, result.SizeBytes)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
