package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	documentRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/document"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

// Service сервис хранения документов: отчеты о выполненных работах,
// счета и изображения автомобилей
type Service struct {
	documentRepo DocumentRepository
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса документов
func NewService(
	documentRepo DocumentRepository,
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *Service {
	return &Service{
		documentRepo: documentRepo,
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// Upload сохраняет документ, перезаписывая содержимое при повторной загрузке
func (s *Service) Upload(ctx context.Context, req *models.UploadDocumentRequest) (*models.DocumentResponse, error) {
	s.logger.Info("Upload: storing document %s for owner id=%s", req.Filename, req.OwnerID)

	if err := validateUploadRequest(req); err != nil {
		s.logger.Warn("Upload: invalid request for owner id=%s: %v", req.OwnerID, err)
		return nil, err
	}

	if err := s.checkOwner(ctx, "Upload", req.Category, req.OwnerID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Key:         domain.DocumentKey(req.Category, req.OwnerID, req.Filename),
		Category:    req.Category,
		OwnerID:     req.OwnerID,
		Filename:    req.Filename,
		ContentType: domain.ContentTypeFor(req.Filename),
		SizeBytes:   int64(len(req.Content)),
		Content:     req.Content,
	}

	stored, err := s.documentRepo.Upsert(ctx, doc)
	if err != nil {
		s.logger.Error("Upload: repository error for key=%s: %v", doc.Key, err)
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: successfully stored document key=%s (%d bytes)", stored.Key, stored.SizeBytes)
	return models.FromDomainDocument(stored), nil
}

// List получает метаданные документов владельца в заданной категории
func (s *Service) List(ctx context.Context, category domain.DocumentCategory, ownerID string) (*models.DocumentListResponse, error) {
	s.logger.Info("List: fetching %s documents for owner id=%s", category, ownerID)

	if err := s.checkOwner(ctx, "List", category, ownerID); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListByOwner(ctx, category, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner id=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d documents for owner id=%s", len(documents), ownerID)
	return models.FromDomainDocumentList(documents), nil
}

// Fetch получает документ вместе с содержимым для выдачи файла
func (s *Service) Fetch(ctx context.Context, category domain.DocumentCategory, ownerID, filename string) (*models.DocumentFileResponse, error) {
	key := domain.DocumentKey(category, ownerID, filename)
	s.logger.Info("Fetch: fetching document key=%s", key)

	doc, err := s.documentRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, documentRepo.ErrDocumentNotFound) {
			s.logger.Warn("Fetch: document key=%s not found", key)
			return nil, ErrDocumentNotFound
		}
		s.logger.Error("Fetch: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Fetch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Fetch: successfully fetched document key=%s (%d bytes)", key, doc.SizeBytes)
	return &models.DocumentFileResponse{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Content:     doc.Content,
	}, nil
}

// Вспомогательные методы

// checkOwner проверяет существование владельца: отчеты и счета принадлежат
// бронированию, изображения принадлежат автомобилю
func (s *Service) checkOwner(ctx context.Context, method string, category domain.DocumentCategory, ownerID string) error {
	switch category {
	case domain.CategoryServiceReport, domain.CategoryInvoice:
		if _, err := s.bookingRepo.GetByID(ctx, ownerID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("%s: booking id=%s not found", method, ownerID)
				return ErrOwnerNotFound
			}
			s.logger.Error("%s: repository error for booking id=%s: %v", method, ownerID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
		}
	case domain.CategoryVehicleImage:
		if _, err := s.vehicleRepo.GetByID(ctx, ownerID); err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				s.logger.Warn("%s: vehicle id=%s not found", method, ownerID)
				return ErrOwnerNotFound
			}
			s.logger.Error("%s: repository error for vehicle id=%s: %v", method, ownerID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
		}
	default:
		return fmt.Errorf("%w: unknown document category %q", ErrInvalidInput, category)
	}

	return nil
}

// validateUploadRequest проверяет обязательные поля запроса загрузки
func validateUploadRequest(req *models.UploadDocumentRequest) error {
	if strings.TrimSpace(req.OwnerID) == "" {
		return fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Filename) == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	if strings.Contains(req.Filename, "/") {
		return fmt.Errorf("%w: filename must not contain path separators", ErrInvalidInput)
	}

	if len(req.Content) == 0 {
		return fmt.Errorf("%w: file content is empty", ErrInvalidInput)
	}

	return nil
}
