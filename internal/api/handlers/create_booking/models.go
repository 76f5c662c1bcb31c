package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	createBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID      string  `json:"customer_id"`
	VehicleID       string  `json:"vehicle_id"`
	ServiceCenterID string  `json:"service_center_id"`
	ServiceType     string  `json:"service_type"`
	BookingDate     string  `json:"booking_date"`   // "2025-10-15"
	ScheduledTime   string  `json:"scheduled_time"` // "14:30"
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string   `json:"id"`
	CustomerID      string   `json:"customer_id"`
	VehicleID       string   `json:"vehicle_id"`
	ServiceCenterID string   `json:"service_center_id"`
	ServiceType     string   `json:"service_type"`
	Status          string   `json:"status"`
	BookingDate     string   `json:"booking_date"`
	ScheduledTime   string   `json:"scheduled_time"`
	EstimatedCost   *float64 `json:"estimated_cost,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата и время передаются строками, формат проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerID:      r.CustomerID,
		VehicleID:       r.VehicleID,
		ServiceCenterID: r.ServiceCenterID,
		ServiceType:     r.ServiceType,
		BookingDate:     r.BookingDate,
		ScheduledTime:   r.ScheduledTime,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		VehicleID:       resp.VehicleID,
		ServiceCenterID: resp.ServiceCenterID,
		ServiceType:     resp.ServiceType,
		Status:          resp.Status,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		ScheduledTime:   resp.ScheduledTime.String(),
		EstimatedCost:   resp.EstimatedCost,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
