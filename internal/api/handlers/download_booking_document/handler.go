package download_booking_document

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents"
)

const msgNotFound = "документ не найден"

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

// Handle GET /api/v1/bookings/{bookingId}/documents/{filename}
// Отдает содержимое файла, а не JSON
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	filename := vars["filename"]

	file, err := h.service.Fetch(r.Context(), domain.CategoryServiceReport, bookingID, filename)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			h.logger.Warn("GET /bookings/{id}/documents/{filename} - Document not found: booking_id=%s, filename=%s",
				bookingID, filename)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/documents/{filename} - Failed to fetch document: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/documents/{filename} - Document served successfully: booking_id=%s, filename=%s, size=%d",
		bookingID, filename, len(file.Content))

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
