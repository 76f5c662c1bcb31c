package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/internal/pricing"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	engine       *lifecycle.Engine
	dispatcher   Dispatcher
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	engine *lifecycle.Engine,
	dispatcher Dispatcher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		engine:       engine,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтры по клиенту, автомобилю, сервисному центру,
// статусу, типу услуги и периоду дат
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByCustomer получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) ListByCustomer(ctx context.Context, customerID string, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListByCustomer: fetching bookings for customer id=%s", customerID)

	var domainStatus *domain.BookingStatus
	if status != nil {
		parsed, err := domain.ParseBookingStatus(*status)
		if err != nil {
			s.logger.Warn("ListByCustomer: invalid status=%s for customer id=%s", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &parsed
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: successfully fetched %d bookings for customer id=%s", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// Update обновляет бронирование
// Смена статуса проходит через машину состояний, недопустимый переход
// возвращается как *domain.TransitionError
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	booking, err := s.getBooking(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if err := s.applyBookingUpdate(booking, req); err != nil {
		s.logger.Warn("Update: rejected update for booking id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.bookingRepo.Update(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование
// Допустимо из любого нетерминального статуса, снимает запланированное
// напоминание и отправляет уведомление об отмене
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Cancel: customer id=%s not found for booking id=%s", booking.CustomerID, id)
			return ErrCustomerNotFound
		}
		s.logger.Error("Cancel: repository error for customer id=%s: %v", booking.CustomerID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	_, intents, err := s.engine.Cancel(*booking, customer.Email, time.Now().UTC())
	if err != nil {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.dispatcher.Dispatch(ctx, intents)

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// EstimateCost рассчитывает стоимость услуги бронирования
// Часы, флаги и стоимость запчастей приходят параметрами запроса,
// скидки добавляются при указании количества услуг или уровня членства
func (s *Service) EstimateCost(ctx context.Context, id string, req *models.EstimateCostRequest) (*models.CostEstimateResponse, error) {
	s.logger.Info("EstimateCost: calculating cost for booking id=%s", id)

	if req.AdditionalPartsCost < 0 {
		s.logger.Warn("EstimateCost: negative parts cost for booking id=%s", id)
		return nil, fmt.Errorf("%w: additional parts cost cannot be negative", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "EstimateCost", id)
	if err != nil {
		return nil, err
	}

	hours := req.EstimatedHours
	if hours <= 0 {
		hours = domain.DefaultEstimatedHours
	}

	breakdown := pricing.ServiceCost(booking.ServiceType, hours, req.IsWeekend, req.IsUrgent, req.AdditionalPartsCost)
	duration := pricing.ServiceDuration(booking.ServiceType)

	resp := models.FromBreakdown(booking.ID, breakdown, duration)

	if req.NumServices >= 2 {
		bulk := pricing.BulkDiscount(breakdown.EstimatedTotal, req.NumServices)
		resp.BulkDiscount = models.FromBulkDiscount(bulk, req.NumServices)
	}

	if tier := strings.TrimSpace(req.MembershipTier); tier != "" {
		membership := pricing.MembershipDiscount(breakdown.EstimatedTotal, tier)
		resp.MembershipDiscount = models.FromMembershipDiscount(membership, strings.ToUpper(tier))
	}

	s.logger.Info("EstimateCost: estimated total %.2f for booking id=%s", breakdown.EstimatedTotal, id)
	return resp, nil
}

// Вспомогательные методы

// getBooking загружает бронирование с маппингом ошибок репозитория
func (s *Service) getBooking(ctx context.Context, method, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// applyBookingUpdate применяет изменяемые поля запроса к бронированию
func (s *Service) applyBookingUpdate(booking *domain.Booking, req *models.UpdateBookingRequest) error {
	if req.Status != nil {
		newStatus, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		if newStatus != booking.Status {
			transitioned, err := domain.ApplyTransition(*booking, newStatus, time.Now().UTC())
			if err != nil {
				return err
			}
			*booking = transitioned
		}
	}

	if req.ServiceType != nil {
		serviceType, err := domain.ParseServiceType(*req.ServiceType)
		if err != nil {
			return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, *req.ServiceType)
		}
		booking.ServiceType = serviceType
	}

	if req.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.BookingDate)
		if err != nil {
			return fmt.Errorf("%w: invalid booking_date: %v", ErrInvalidInput, err)
		}
		booking.BookingDate = date
	}

	if req.ScheduledTime != nil {
		scheduledTime, err := types.NewTimeStringFromString(*req.ScheduledTime)
		if err != nil {
			return fmt.Errorf("%w: invalid scheduled_time: %v", ErrInvalidInput, err)
		}
		booking.ScheduledTime = scheduledTime
	}

	if req.ActualCost != nil {
		if *req.ActualCost < 0 {
			return fmt.Errorf("%w: actual cost cannot be negative", ErrInvalidInput)
		}
		booking.ActualCost = req.ActualCost
	}

	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	return nil
}
