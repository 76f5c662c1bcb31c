package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/reports"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
	"github.com/m04kA/SMC-VehicleService/internal/validation"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Create регистрирует нового клиента
// Телефон проверяется и нормализуется, email должен быть свободен
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer email=%s", req.Email)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	phoneCheck := validation.Phone(req.Phone)
	if !phoneCheck.Valid {
		s.logger.Warn("Create: invalid phone for email=%s", req.Email)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, phoneCheck.Message)
	}

	// Проверяем уникальность email
	_, err := s.customerRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Warn("Create: email=%s already registered", req.Email)
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("Create: repository error checking email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	customer := &domain.Customer{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Phone:     phoneCheck.Normalized,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%s", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%s", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%s not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// List получает список всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	s.logger.Info("List: fetching customers")

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// Update обновляет данные клиента
// Nil-поля запроса сохраняют текущие значения
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%s", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%s not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyCustomerUpdate(customer, req); err != nil {
		s.logger.Warn("Update: invalid request for customer id=%s: %v", id, err)
		return nil, err
	}

	// Email мог измениться, проверяем что новый свободен
	existing, err := s.customerRepo.GetByEmail(ctx, customer.Email)
	if err == nil && existing.ID != customer.ID {
		s.logger.Warn("Update: email=%s already registered", customer.Email)
		return nil, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("Update: repository error checking email=%s: %v", customer.Email, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%s", id)
	return models.FromDomainCustomer(updated), nil
}

// Delete удаляет клиента вместе с его автомобилями
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting customer id=%s", id)

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%s not found", id)
			return ErrCustomerNotFound
		}
		s.logger.Error("Delete: repository error for customer id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted customer id=%s", id)
	return nil
}

// History строит отчет по истории обслуживания клиента
func (s *Service) History(ctx context.Context, customerID string) (*models.ServiceHistoryResponse, error) {
	s.logger.Info("History: building service history for customer id=%s", customerID)

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("History: customer id=%s not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("History: repository error for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID, nil)
	if err != nil {
		s.logger.Error("History: repository error fetching bookings for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	history := reports.CustomerServiceHistory(derefBookings(bookings), time.Now().UTC())

	s.logger.Info("History: built report for customer id=%s over %d bookings", customerID, history.TotalServices)
	return models.FromReportHistory(history), nil
}

// Вспомогательные функции

func validateCreateRequest(req *models.CreateCustomerRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}

func applyCustomerUpdate(customer *domain.Customer, req *models.UpdateCustomerRequest) error {
	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return fmt.Errorf("%w: first_name cannot be empty", ErrInvalidInput)
		}
		customer.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return fmt.Errorf("%w: last_name cannot be empty", ErrInvalidInput)
		}
		customer.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		phoneCheck := validation.Phone(*req.Phone)
		if !phoneCheck.Valid {
			return fmt.Errorf("%w: %s", ErrInvalidInput, phoneCheck.Message)
		}
		customer.Phone = phoneCheck.Normalized
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.City != nil {
		customer.City = req.City
	}
	if req.State != nil {
		customer.State = req.State
	}
	if req.ZipCode != nil {
		customer.ZipCode = req.ZipCode
	}
	return nil
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
