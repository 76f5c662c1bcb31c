package centers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	centerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/servicecenter"
	"github.com/m04kA/SMC-VehicleService/internal/reports"
	"github.com/m04kA/SMC-VehicleService/internal/service/centers/models"
)

// Service сервис для работы с сервисными центрами
type Service struct {
	centerRepo  ServiceCenterRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сервисных центров
func NewService(
	centerRepo ServiceCenterRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		centerRepo:  centerRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create регистрирует новый сервисный центр
// График работы по умолчанию 9:00 AM - 6:00 PM
func (s *Service) Create(ctx context.Context, req *models.CreateServiceCenterRequest) (*models.ServiceCenterResponse, error) {
	s.logger.Info("Create: creating service center name=%s", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	services, err := parseServices(req.ServicesOffered)
	if err != nil {
		s.logger.Warn("Create: invalid services list for name=%s: %v", req.Name, err)
		return nil, err
	}

	workingHours := domain.DefaultWorkingHours
	if req.WorkingHours != nil && strings.TrimSpace(*req.WorkingHours) != "" {
		workingHours = *req.WorkingHours
	}

	center := &domain.ServiceCenter{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Phone:           req.Phone,
		Email:           req.Email,
		ServicesOffered: services,
		WorkingHours:    workingHours,
	}

	created, err := s.centerRepo.Create(ctx, center)
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service center id=%s", created.ID)
	return models.FromDomainServiceCenter(created), nil
}

// GetByID получает сервисный центр по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceCenterResponse, error) {
	s.logger.Info("GetByID: fetching service center id=%s", id)

	center, err := s.getCenter(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainServiceCenter(center), nil
}

// List получает сервисные центры с фильтрами по городу и типу услуги
func (s *Service) List(ctx context.Context, city *string, serviceType *domain.ServiceType) (*models.ServiceCenterListResponse, error) {
	s.logger.Info("List: fetching service centers")

	if serviceType != nil && !serviceType.Valid() {
		s.logger.Warn("List: unknown service type %q", *serviceType)
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, *serviceType)
	}

	centers, err := s.centerRepo.List(ctx, city, serviceType)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d service centers", len(centers))
	return models.FromDomainServiceCenterList(centers), nil
}

// Update обновляет данные сервисного центра
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateServiceCenterRequest) (*models.ServiceCenterResponse, error) {
	s.logger.Info("Update: updating service center id=%s", id)

	center, err := s.getCenter(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if err := applyCenterUpdate(center, req); err != nil {
		s.logger.Warn("Update: invalid request for service center id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.centerRepo.Update(ctx, center)
	if err != nil {
		if errors.Is(err, centerRepo.ErrServiceCenterNotFound) {
			return nil, ErrServiceCenterNotFound
		}
		s.logger.Error("Update: repository error for service center id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service center id=%s", id)
	return models.FromDomainServiceCenter(updated), nil
}

// Delete удаляет сервисный центр
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting service center id=%s", id)

	if err := s.centerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, centerRepo.ErrServiceCenterNotFound) {
			s.logger.Warn("Delete: service center id=%s not found", id)
			return ErrServiceCenterNotFound
		}
		s.logger.Error("Delete: repository error for service center id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service center id=%s", id)
	return nil
}

// Performance строит отчет о показателях сервисного центра
func (s *Service) Performance(ctx context.Context, id string) (*models.PerformanceResponse, error) {
	s.logger.Info("Performance: building report for service center id=%s", id)

	if _, err := s.getCenter(ctx, "Performance", id); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{ServiceCenterID: &id})
	if err != nil {
		s.logger.Error("Performance: repository error fetching bookings for service center id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Performance - repository error: %v", ErrInternal, err)
	}

	report := reports.ServiceCenterPerformance(derefBookings(bookings), time.Now().UTC())

	s.logger.Info("Performance: built report for service center id=%s over %d bookings", id, report.TotalBookings)
	return models.FromReportPerformance(id, report), nil
}

// getCenter загружает сервисный центр с маппингом ошибок репозитория
func (s *Service) getCenter(ctx context.Context, method, id string) (*domain.ServiceCenter, error) {
	center, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, centerRepo.ErrServiceCenterNotFound) {
			s.logger.Warn("%s: service center id=%s not found", method, id)
			return nil, ErrServiceCenterNotFound
		}
		s.logger.Error("%s: repository error for service center id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return center, nil
}

// Вспомогательные функции

func validateCreateRequest(req *models.CreateServiceCenterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.ServicesOffered) == 0 {
		return fmt.Errorf("%w: services_offered is required", ErrInvalidInput)
	}
	return nil
}

func applyCenterUpdate(center *domain.ServiceCenter, req *models.UpdateServiceCenterRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		center.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		center.Phone = *req.Phone
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		center.Email = *req.Email
	}
	if req.ServicesOffered != nil {
		services, err := parseServices(*req.ServicesOffered)
		if err != nil {
			return err
		}
		center.ServicesOffered = services
	}
	if req.WorkingHours != nil {
		center.WorkingHours = *req.WorkingHours
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
		}
		center.Rating = req.Rating
	}
	return nil
}

// parseServices разбирает список типов услуг, неизвестные значения отклоняются
func parseServices(raw []string) ([]domain.ServiceType, error) {
	services := make([]domain.ServiceType, 0, len(raw))
	for _, item := range raw {
		st, err := domain.ParseServiceType(item)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, item)
		}
		services = append(services, st)
	}
	return services, nil
}

func derefBookings(bookings []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}
