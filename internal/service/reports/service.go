package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	reportgen "github.com/m04kA/SMC-VehicleService/internal/reports"
	"github.com/m04kA/SMC-VehicleService/internal/service/reports/models"
)

// Service сервис построения отчетов по бронированиям
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Summary строит сводный отчет по всем бронированиям
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: generating booking summary report")

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	summary := reportgen.BookingSummary(derefBookings(bookings), time.Now().UTC())

	s.logger.Info("Summary: report covers %d bookings", summary.TotalBookings)
	return models.FromSummary(summary), nil
}

// Monthly строит отчет за календарный месяц
func (s *Service) Monthly(ctx context.Context, year int, month int) (*models.MonthlyResponse, error) {
	s.logger.Info("Monthly: generating report for %d-%02d", year, month)

	if month < 1 || month > 12 {
		s.logger.Warn("Monthly: invalid month=%d", month)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if year < 1 {
		s.logger.Warn("Monthly: invalid year=%d", year)
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Monthly: repository error: %v", err)
		return nil, fmt.Errorf("%w: Monthly - repository error: %v", ErrInternal, err)
	}

	monthly := reportgen.MonthlyReport(time.Month(month), year, derefBookings(bookings), time.Now().UTC())

	s.logger.Info("Monthly: report for %d-%02d covers %d bookings", year, month, monthly.TotalBookings)
	return models.FromMonthly(monthly), nil
}

// derefBookings разыменовывает список бронирований для передачи в ядро отчетов
func derefBookings(bookings []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}
