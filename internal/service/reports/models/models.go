package models

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/reports"
)

// Response модели

// SummaryTotals агрегаты по всем бронированиям
type SummaryTotals struct {
	TotalBookings       int     `json:"total_bookings"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageBookingValue float64 `json:"average_booking_value"`
}

// SummaryResponse сводный отчет по бронированиям
type SummaryResponse struct {
	Summary       SummaryTotals  `json:"summary"`
	ByStatus      map[string]int `json:"by_status"`
	ByServiceType map[string]int `json:"by_service_type"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// MonthlyResponse отчет за календарный месяц
type MonthlyResponse struct {
	Month               int       `json:"month"`
	Year                int       `json:"year"`
	TotalBookings       int       `json:"total_bookings"`
	TotalRevenue        float64   `json:"total_revenue"`
	AverageBookingValue float64   `json:"average_booking_value"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// Методы конвертации

// FromSummary конвертирует сводный отчет ядра в DTO
func FromSummary(s reports.Summary) *SummaryResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}

	byServiceType := make(map[string]int, len(s.ByServiceType))
	for serviceType, n := range s.ByServiceType {
		byServiceType[string(serviceType)] = n
	}

	return &SummaryResponse{
		Summary: SummaryTotals{
			TotalBookings:       s.TotalBookings,
			TotalRevenue:        s.TotalRevenue,
			AverageBookingValue: s.AverageBookingValue,
		},
		ByStatus:      byStatus,
		ByServiceType: byServiceType,
		GeneratedAt:   s.GeneratedAt,
	}
}

// FromMonthly конвертирует месячный отчет ядра в DTO
func FromMonthly(m reports.Monthly) *MonthlyResponse {
	return &MonthlyResponse{
		Month:               int(m.Month),
		Year:                m.Year,
		TotalBookings:       m.TotalBookings,
		TotalRevenue:        m.TotalRevenue,
		AverageBookingValue: m.AverageBookingValue,
		GeneratedAt:         m.GeneratedAt,
	}
}
