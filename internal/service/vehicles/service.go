package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
	"github.com/m04kA/SMC-VehicleService/internal/validation"
)

// Service сервис для работы с автомобилями клиентов
type Service struct {
	vehicleRepo  VehicleRepository
	customerRepo CustomerRepository
	engine       *lifecycle.Engine
	dispatcher   Dispatcher
	logger       Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(
	vehicleRepo VehicleRepository,
	customerRepo CustomerRepository,
	engine *lifecycle.Engine,
	dispatcher Dispatcher,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		engine:       engine,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Create регистрирует новый автомобиль клиента
// Регистрационный номер и VIN сохраняются в нормализованном виде
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: creating vehicle for customer id=%s", req.CustomerID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	regCheck := validation.RegistrationNumber(req.RegistrationNumber)
	if !regCheck.Valid {
		s.logger.Warn("Create: invalid registration number for customer id=%s", req.CustomerID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, regCheck.Message)
	}

	var vin *string
	if req.VIN != nil && strings.TrimSpace(*req.VIN) != "" {
		vinCheck := validation.VIN(*req.VIN)
		if !vinCheck.Valid {
			s.logger.Warn("Create: invalid VIN for customer id=%s", req.CustomerID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, vinCheck.Message)
		}
		vin = &vinCheck.Normalized
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Create: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Create: repository error for customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	mileage := 0
	if req.Mileage != nil {
		mileage = *req.Mileage
	}

	vehicle := &domain.Vehicle{
		ID:                 uuid.NewString(),
		CustomerID:         req.CustomerID,
		RegistrationNumber: regCheck.Normalized,
		VIN:                vin,
		Make:               strings.TrimSpace(req.Make),
		Model:              strings.TrimSpace(req.Model),
		Year:               req.Year,
		Color:              req.Color,
		Mileage:            mileage,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error for customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created vehicle id=%s", created.ID)
	return models.FromDomainVehicle(created), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.VehicleResponse, error) {
	s.logger.Info("GetByID: fetching vehicle id=%s", id)

	vehicle, err := s.getVehicle(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainVehicle(vehicle), nil
}

// ListByCustomer получает все автомобили клиента
func (s *Service) ListByCustomer(ctx context.Context, customerID string) (*models.VehicleListResponse, error) {
	s.logger.Info("ListByCustomer: fetching vehicles for customer id=%s", customerID)

	vehicles, err := s.vehicleRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: successfully fetched %d vehicles for customer id=%s", len(vehicles), customerID)
	return models.FromDomainVehicleList(vehicles), nil
}

// Update обновляет изменяемые поля автомобиля
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: updating vehicle id=%s", id)

	vehicle, err := s.getVehicle(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Mileage != nil {
		if *req.Mileage < 0 {
			s.logger.Warn("Update: negative mileage for vehicle id=%s", id)
			return nil, fmt.Errorf("%w: mileage cannot be negative", ErrInvalidInput)
		}
		vehicle.Mileage = *req.Mileage
	}
	if req.Color != nil {
		vehicle.Color = req.Color
	}

	updated, err := s.vehicleRepo.Update(ctx, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated vehicle id=%s", id)
	return models.FromDomainVehicle(updated), nil
}

// Delete удаляет автомобиль
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting vehicle id=%s", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%s not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted vehicle id=%s", id)
	return nil
}

// Validate строит отчет о корректности данных автомобиля
func (s *Service) Validate(ctx context.Context, id string) (*models.ValidationReportResponse, error) {
	s.logger.Info("Validate: validating vehicle id=%s", id)

	vehicle, err := s.getVehicle(ctx, "Validate", id)
	if err != nil {
		return nil, err
	}

	report := &models.ValidationReportResponse{
		VehicleID:              vehicle.ID,
		RegistrationValidation: models.FromValidationResult(validation.RegistrationNumber(vehicle.RegistrationNumber)),
	}

	if vehicle.VIN != nil && *vehicle.VIN != "" {
		report.VINValidation = models.FromValidationResult(validation.VIN(*vehicle.VIN))
	} else {
		report.VINValidation = models.FieldCheck{IsValid: true, Message: "No VIN provided"}
	}

	return report, nil
}

// Eligibility проверяет допуск автомобиля к обслуживанию по пробегу
func (s *Service) Eligibility(ctx context.Context, id string, serviceType domain.ServiceType, lastServiceMileage int) (*models.EligibilityResponse, error) {
	s.logger.Info("Eligibility: checking vehicle id=%s service_type=%s", id, serviceType)

	if !serviceType.Valid() {
		s.logger.Warn("Eligibility: unknown service type %q for vehicle id=%s", serviceType, id)
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, serviceType)
	}
	if lastServiceMileage < 0 {
		s.logger.Warn("Eligibility: negative last service mileage for vehicle id=%s", id)
		return nil, fmt.Errorf("%w: last service mileage cannot be negative", ErrInvalidInput)
	}

	vehicle, err := s.getVehicle(ctx, "Eligibility", id)
	if err != nil {
		return nil, err
	}

	result := validation.ServiceEligibility(vehicle.Mileage, lastServiceMileage, serviceType)
	return models.FromEligibilityResult(vehicle.ID, result), nil
}

// ScheduleMaintenance регистрирует регулярное напоминание о техобслуживании
func (s *Service) ScheduleMaintenance(ctx context.Context, id string, intervalDays int) (*models.MaintenanceScheduleResponse, error) {
	s.logger.Info("ScheduleMaintenance: scheduling maintenance reminders for vehicle id=%s", id)

	vehicle, err := s.getVehicle(ctx, "ScheduleMaintenance", id)
	if err != nil {
		return nil, err
	}

	owner, err := s.customerRepo.GetByID(ctx, vehicle.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("ScheduleMaintenance: customer id=%s not found for vehicle id=%s", vehicle.CustomerID, id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("ScheduleMaintenance: repository error for customer id=%s: %v", vehicle.CustomerID, err)
		return nil, fmt.Errorf("%w: ScheduleMaintenance - repository error: %v", ErrInternal, err)
	}

	if intervalDays <= 0 {
		intervalDays = lifecycle.DefaultMaintenanceIntervalDays
	}

	intent := s.engine.ScheduleRecurringMaintenance(vehicle.ID, owner.Email, intervalDays, time.Now().UTC())
	s.dispatcher.Dispatch(ctx, []lifecycle.Intent{intent})

	s.logger.Info("ScheduleMaintenance: registered rule key=%s for vehicle id=%s", intent.RuleKey, id)
	return &models.MaintenanceScheduleResponse{
		VehicleID:       vehicle.ID,
		RuleKey:         intent.RuleKey,
		IntervalDays:    intervalDays,
		FirstReminderAt: intent.FireAt,
	}, nil
}

// getVehicle загружает автомобиль с маппингом ошибок репозитория
func (s *Service) getVehicle(ctx context.Context, method, id string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("%s: vehicle id=%s not found", method, id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("%s: repository error for vehicle id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return vehicle, nil
}

func validateCreateRequest(req *models.CreateVehicleRequest) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customer_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RegistrationNumber) == "" {
		return fmt.Errorf("%w: registration_number is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Make) == "" {
		return fmt.Errorf("%w: make is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if req.Year < domain.MinVehicleYear {
		return fmt.Errorf("%w: year must be %d or later", ErrInvalidInput, domain.MinVehicleYear)
	}
	if req.Mileage != nil && *req.Mileage < 0 {
		return fmt.Errorf("%w: mileage cannot be negative", ErrInvalidInput)
	}
	return nil
}
