package models

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/reports"
)

// Request модели

// CreateServiceCenterRequest запрос на регистрацию сервисного центра
type CreateServiceCenterRequest struct {
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	ZipCode         string   `json:"zip_code"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	ServicesOffered []string `json:"services_offered"`
	WorkingHours    *string  `json:"working_hours,omitempty"`
}

// UpdateServiceCenterRequest запрос на обновление сервисного центра
// Nil-поля сохраняют текущие значения
type UpdateServiceCenterRequest struct {
	Name            *string   `json:"name,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	ServicesOffered *[]string `json:"services_offered,omitempty"`
	WorkingHours    *string   `json:"working_hours,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
}

// Response модели

// ServiceCenterResponse ответ с данными сервисного центра
type ServiceCenterResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	ZipCode         string    `json:"zip_code"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ServicesOffered []string  `json:"services_offered"`
	WorkingHours    string    `json:"working_hours"`
	Rating          *float64  `json:"rating,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceCenterListResponse ответ со списком сервисных центров
type ServiceCenterListResponse struct {
	ServiceCenters []ServiceCenterResponse `json:"service_centers"`
}

// PerformanceResponse отчет о показателях сервисного центра
type PerformanceResponse struct {
	ServiceCenterID          string    `json:"service_center_id"`
	TotalBookings            int       `json:"total_bookings"`
	CompletedBookings        int       `json:"completed_bookings"`
	CancelledBookings        int       `json:"cancelled_bookings"`
	CompletionRate           float64   `json:"completion_rate"`
	CancellationRate         float64   `json:"cancellation_rate"`
	TotalRevenue             float64   `json:"total_revenue"`
	AverageRevenuePerBooking float64   `json:"average_revenue_per_booking"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// Методы конвертации

// FromDomainServiceCenter конвертирует domain модель в DTO
func FromDomainServiceCenter(c *domain.ServiceCenter) *ServiceCenterResponse {
	if c == nil {
		return nil
	}

	services := make([]string, 0, len(c.ServicesOffered))
	for _, st := range c.ServicesOffered {
		services = append(services, string(st))
	}

	return &ServiceCenterResponse{
		ID:              c.ID,
		Name:            c.Name,
		Address:         c.Address,
		City:            c.City,
		State:           c.State,
		ZipCode:         c.ZipCode,
		Phone:           c.Phone,
		Email:           c.Email,
		ServicesOffered: services,
		WorkingHours:    c.WorkingHours,
		Rating:          c.Rating,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromDomainServiceCenterList конвертирует список domain моделей в DTO
func FromDomainServiceCenterList(centers []*domain.ServiceCenter) *ServiceCenterListResponse {
	resp := &ServiceCenterListResponse{
		ServiceCenters: make([]ServiceCenterResponse, 0, len(centers)),
	}

	for _, center := range centers {
		if centerResp := FromDomainServiceCenter(center); centerResp != nil {
			resp.ServiceCenters = append(resp.ServiceCenters, *centerResp)
		}
	}

	return resp
}

// FromReportPerformance конвертирует отчет ядра в DTO
func FromReportPerformance(centerID string, p reports.CenterPerformance) *PerformanceResponse {
	return &PerformanceResponse{
		ServiceCenterID:          centerID,
		TotalBookings:            p.TotalBookings,
		CompletedBookings:        p.CompletedBookings,
		CancelledBookings:        p.CancelledBookings,
		CompletionRate:           p.CompletionRate,
		CancellationRate:         p.CancellationRate,
		TotalRevenue:             p.TotalRevenue,
		AverageRevenuePerBooking: p.AverageRevenuePerBooking,
		GeneratedAt:              p.GeneratedAt,
	}
}
