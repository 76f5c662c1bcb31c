package download_booking_document

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

type DocumentService interface {
	Fetch(ctx context.Context, category domain.DocumentCategory, ownerID, filename string) (*models.DocumentFileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
