package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// UseCase use case завершения обслуживания
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
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
	engine *lifecycle.Engine,
	dispatcher Dispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		engine:       engine,
		dispatcher:   dispatcher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case завершения обслуживания
// Статус и итоговая стоимость записываются в сериализуемой транзакции под
// блокировкой строки, уведомления уходят только после коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteBooking: booking=%s, actual cost=%.2f", req.BookingID, req.ActualCost)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменные для хранения результата
	var completed domain.Booking
	var intents []lifecycle.Intent

	// 3. Выполняем смену статуса в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CompleteBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CompleteBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Получаем клиента, ему уйдет уведомление о завершении
		customer, err := uc.customerRepo.GetByID(txCtx, booking.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CompleteBooking: customer id=%s not found for booking id=%s",
					booking.CustomerID, req.BookingID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("CompleteBooking: failed to get customer id=%s: %v", booking.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}

		// 3.3. Lifecycle engine проверяет переход статуса и собирает intent'ы
		completed, intents, err = uc.engine.Complete(*booking, req.ActualCost, customer.Email, now)
		if err != nil {
			uc.logger.Warn("CompleteBooking: booking id=%s cannot be completed, status=%s",
				req.BookingID, booking.Status)
			return err
		}

		// 3.4. Записываем статус и итоговую стоимость одним запросом
		if err := uc.bookingRepo.Complete(txCtx, req.BookingID, domain.StatusCompleted, req.ActualCost); err != nil {
			uc.logger.Error("CompleteBooking: failed to complete booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to complete booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Отправляем уведомление, запись в очередь и follow-up после коммита
	uc.dispatcher.Dispatch(ctx, intents)

	uc.logger.Info("CompleteBooking: successfully completed booking id=%s", completed.ID)

	// Конвертируем в response
	return &Response{
		ID:              completed.ID,
		CustomerID:      completed.CustomerID,
		VehicleID:       completed.VehicleID,
		ServiceCenterID: completed.ServiceCenterID,
		ServiceType:     string(completed.ServiceType),
		Status:          string(completed.Status),
		BookingDate:     completed.BookingDate,
		ScheduledTime:   completed.ScheduledTime,
		EstimatedCost:   completed.EstimatedCost,
		ActualCost:      completed.ActualCost,
		Notes:           completed.Notes,
		CreatedAt:       completed.CreatedAt,
		UpdatedAt:       completed.UpdatedAt,
	}, nil
}
