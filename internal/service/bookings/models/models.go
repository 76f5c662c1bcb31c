package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/pricing"
)

// Request модели

// UpdateBookingRequest запрос на обновление бронирования
// Nil-поля сохраняют текущие значения, смена статуса проходит через
// машину состояний
type UpdateBookingRequest struct {
	ServiceType   *string  `json:"service_type,omitempty"`
	BookingDate   *string  `json:"booking_date,omitempty"`   // "2025-10-15"
	ScheduledTime *string  `json:"scheduled_time,omitempty"` // "14:30"
	Status        *string  `json:"status,omitempty"`
	ActualCost    *float64 `json:"actual_cost,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ListBookingsRequest параметры выборки бронирований
type ListBookingsRequest struct {
	CustomerID      *string `json:"customer_id,omitempty"`
	VehicleID       *string `json:"vehicle_id,omitempty"`
	ServiceCenterID *string `json:"service_center_id,omitempty"`
	Status          *string `json:"status,omitempty"`
	ServiceType     *string `json:"service_type,omitempty"`
	FromDate        *string `json:"from_date,omitempty"` // "2025-10-01"
	ToDate          *string `json:"to_date,omitempty"`   // "2025-10-31"
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CustomerID:      r.CustomerID,
		VehicleID:       r.VehicleID,
		ServiceCenterID: r.ServiceCenterID,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.ServiceType != nil {
		serviceType, err := domain.ParseServiceType(*r.ServiceType)
		if err != nil {
			return filter, err
		}
		filter.ServiceType = &serviceType
	}

	if r.FromDate != nil {
		from, err := time.Parse(domain.DateFormat, *r.FromDate)
		if err != nil {
			return filter, fmt.Errorf("invalid from_date: %w", err)
		}
		filter.FromDate = &from
	}

	if r.ToDate != nil {
		to, err := time.Parse(domain.DateFormat, *r.ToDate)
		if err != nil {
			return filter, fmt.Errorf("invalid to_date: %w", err)
		}
		filter.ToDate = &to
	}

	return filter, nil
}

// EstimateCostRequest параметры расчета стоимости
type EstimateCostRequest struct {
	EstimatedHours      float64 // 0 = значение по умолчанию 1.5
	IsWeekend           bool
	IsUrgent            bool
	AdditionalPartsCost float64
	NumServices         int    // для bulk скидки, учитывается от 2
	MembershipTier      string // для скидки по членству, пустая строка = нет
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	VehicleID       string    `json:"vehicle_id"`
	ServiceCenterID string    `json:"service_center_id"`
	ServiceType     string    `json:"service_type"`
	Status          string    `json:"status"`
	BookingDate     string    `json:"booking_date"`   // "2025-10-15"
	ScheduledTime   string    `json:"scheduled_time"` // "14:30"
	EstimatedCost   *float64  `json:"estimated_cost,omitempty"`
	ActualCost      *float64  `json:"actual_cost,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CostBreakdown детализация стоимости
type CostBreakdown struct {
	BaseServiceCost     float64 `json:"base_service_cost"`
	LaborCost           float64 `json:"labor_cost"`
	EstimatedHours      float64 `json:"estimated_hours"`
	LaborRatePerHour    float64 `json:"labor_rate_per_hour"`
	AdditionalPartsCost float64 `json:"additional_parts_cost"`
	WeekendSurcharge    float64 `json:"weekend_surcharge"`
	UrgentSurcharge     float64 `json:"urgent_surcharge"`
	Subtotal            float64 `json:"subtotal"`
	Tax                 float64 `json:"tax"`
	TaxRate             string  `json:"tax_rate"` // "8.0%"
}

// DurationEstimate оценка длительности услуги
type DurationEstimate struct {
	ServiceType              string  `json:"service_type"`
	EstimatedDurationHours   float64 `json:"estimated_duration_hours"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
}

// BulkDiscount скидка за несколько услуг
type BulkDiscount struct {
	OriginalCost   float64 `json:"original_cost"`
	NumServices    int     `json:"num_services"`
	DiscountRate   string  `json:"discount_rate"` // "10.0%"
	DiscountAmount float64 `json:"discount_amount"`
	FinalCost      float64 `json:"final_cost"`
	Savings        float64 `json:"savings"`
}

// MembershipDiscount скидка по уровню членства
type MembershipDiscount struct {
	OriginalCost   float64 `json:"original_cost"`
	MembershipTier string  `json:"membership_tier"`
	DiscountRate   string  `json:"discount_rate"` // "15.0%"
	DiscountAmount float64 `json:"discount_amount"`
	FinalCost      float64 `json:"final_cost"`
}

// CostEstimateResponse ответ с расчетом стоимости бронирования
type CostEstimateResponse struct {
	BookingID          string              `json:"booking_id"`
	ServiceType        string              `json:"service_type"`
	Breakdown          CostBreakdown       `json:"breakdown"`
	EstimatedTotal     float64             `json:"estimated_total"`
	Currency           string              `json:"currency"`
	Duration           DurationEstimate    `json:"duration"`
	BulkDiscount       *BulkDiscount       `json:"bulk_discount,omitempty"`
	MembershipDiscount *MembershipDiscount `json:"membership_discount,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		VehicleID:       b.VehicleID,
		ServiceCenterID: b.ServiceCenterID,
		ServiceType:     string(b.ServiceType),
		Status:          string(b.Status),
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		ScheduledTime:   b.ScheduledTime.String(),
		EstimatedCost:   b.EstimatedCost,
		ActualCost:      b.ActualCost,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromBreakdown конвертирует расчет стоимости ядра в DTO
func FromBreakdown(bookingID string, b pricing.Breakdown, d pricing.DurationEstimate) *CostEstimateResponse {
	return &CostEstimateResponse{
		BookingID:   bookingID,
		ServiceType: string(b.ServiceType),
		Breakdown: CostBreakdown{
			BaseServiceCost:     b.BaseServiceCost,
			LaborCost:           b.LaborCost,
			EstimatedHours:      b.EstimatedHours,
			LaborRatePerHour:    b.LaborRatePerHour,
			AdditionalPartsCost: b.AdditionalPartsCost,
			WeekendSurcharge:    b.WeekendSurcharge,
			UrgentSurcharge:     b.UrgentSurcharge,
			Subtotal:            b.Subtotal,
			Tax:                 b.Tax,
			TaxRate:             formatRate(b.TaxRate),
		},
		EstimatedTotal: b.EstimatedTotal,
		Currency:       b.Currency,
		Duration: DurationEstimate{
			ServiceType:              string(d.ServiceType),
			EstimatedDurationHours:   d.Hours,
			EstimatedDurationMinutes: d.Minutes,
		},
	}
}

// FromBulkDiscount конвертирует bulk скидку в DTO
func FromBulkDiscount(d pricing.Discount, numServices int) *BulkDiscount {
	return &BulkDiscount{
		OriginalCost:   d.OriginalCost,
		NumServices:    numServices,
		DiscountRate:   formatRate(d.DiscountRate),
		DiscountAmount: d.DiscountAmount,
		FinalCost:      d.FinalCost,
		Savings:        d.DiscountAmount,
	}
}

// FromMembershipDiscount конвертирует скидку по членству в DTO
func FromMembershipDiscount(d pricing.Discount, tier string) *MembershipDiscount {
	return &MembershipDiscount{
		OriginalCost:   d.OriginalCost,
		MembershipTier: tier,
		DiscountRate:   formatRate(d.DiscountRate),
		DiscountAmount: d.DiscountAmount,
		FinalCost:      d.FinalCost,
	}
}

// formatRate форматирует долю как процентную строку, например "8.0%"
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
