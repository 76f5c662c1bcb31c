package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	servicecenterRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/servicecenter"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	vehicleRepo  VehicleRepository
	centerRepo   ServiceCenterRepository
	engine       *lifecycle.Engine
	dispatcher   Dispatcher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	vehicleRepo VehicleRepository,
	centerRepo ServiceCenterRepository,
	engine *lifecycle.Engine,
	dispatcher Dispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		centerRepo:   centerRepo,
		engine:       engine,
		dispatcher:   dispatcher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Запись сохраняется в сериализуемой транзакции, уведомления и постановка
// напоминания уходят только после коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, vehicle=%s, center=%s, service=%s, date=%s, time=%s",
		req.CustomerID, req.VehicleID, req.ServiceCenterID, req.ServiceType, req.BookingDate, req.ScheduledTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	serviceType, _ := domain.ParseServiceType(req.ServiceType)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем клиента, ему уйдут уведомления
	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Получаем автомобиль и проверяем владельца
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if err := validateOwnership(vehicle, req.CustomerID); err != nil {
		uc.logger.Warn("CreateBooking: vehicle id=%s does not belong to customer id=%s",
			req.VehicleID, req.CustomerID)
		return nil, err
	}

	// 5. Получаем сервисный центр и проверяем, что услуга оказывается
	center, err := uc.centerRepo.GetByID(ctx, req.ServiceCenterID)
	if err != nil {
		if errors.Is(err, servicecenterRepo.ErrServiceCenterNotFound) {
			uc.logger.Warn("CreateBooking: service center id=%s not found", req.ServiceCenterID)
			return nil, ErrServiceCenterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service center id=%s: %v", req.ServiceCenterID, err)
		return nil, fmt.Errorf("%w: failed to get service center: %v", ErrInternal, err)
	}

	if err := validateCenterOffers(center, serviceType); err != nil {
		uc.logger.Warn("CreateBooking: center id=%s does not offer service %s",
			req.ServiceCenterID, serviceType)
		return nil, err
	}

	// 6. Lifecycle engine проверяет дату, считает стоимость и собирает
	// бронирование вместе с side-effect intent'ами
	submitted, err := uc.engine.Submit(lifecycle.SubmitRequest{
		BookingID:         uuid.NewString(),
		CustomerID:        req.CustomerID,
		VehicleID:         req.VehicleID,
		ServiceCenterID:   req.ServiceCenterID,
		ServiceType:       serviceType,
		BookingDate:       req.BookingDate,
		ScheduledTime:     req.ScheduledTime,
		Notes:             req.Notes,
		CustomerEmail:     customer.Email,
		ServiceCenterName: center.Name,
	}, now)
	if err != nil {
		var validationErr *lifecycle.ValidationError
		if errors.As(err, &validationErr) {
			uc.logger.Warn("CreateBooking: booking date rejected: %s", validationErr.Message)
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, validationErr.Message)
		}
		uc.logger.Error("CreateBooking: lifecycle submit failed: %v", err)
		return nil, fmt.Errorf("%w: lifecycle submit: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var created *domain.Booking

	// 7. Сохраняем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stored, err := uc.bookingRepo.Create(txCtx, &submitted.Booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created = stored
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Отправляем уведомление, запись в очередь и напоминание после коммита
	uc.dispatcher.Dispatch(ctx, submitted.Intents)

	uc.logger.Info("CreateBooking: successfully created booking id=%s, estimated cost %.2f",
		created.ID, submitted.Cost.EstimatedTotal)

	// Конвертируем в response
	return &Response{
		ID:              created.ID,
		CustomerID:      created.CustomerID,
		VehicleID:       created.VehicleID,
		ServiceCenterID: created.ServiceCenterID,
		ServiceType:     string(created.ServiceType),
		Status:          string(created.Status),
		BookingDate:     created.BookingDate,
		ScheduledTime:   created.ScheduledTime,
		EstimatedCost:   created.EstimatedCost,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
