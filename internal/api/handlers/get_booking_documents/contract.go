package get_booking_documents

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

type DocumentService interface {
	List(ctx context.Context, category domain.DocumentCategory, ownerID string) (*models.DocumentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
