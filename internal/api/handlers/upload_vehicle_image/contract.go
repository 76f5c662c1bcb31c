package upload_vehicle_image

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

type DocumentService interface {
	Upload(ctx context.Context, req *models.UploadDocumentRequest) (*models.DocumentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
