package complete_booking

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	completeBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/complete_booking"
)

// CompleteBookingRequest HTTP request model
type CompleteBookingRequest struct {
	ActualCost float64 `json:"actual_cost"`
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
	ActualCost      *float64 `json:"actual_cost,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteBookingRequest) ToUseCaseRequest(bookingID string) *completeBooking.Request {
	return &completeBooking.Request{
		BookingID:  bookingID,
		ActualCost: r.ActualCost,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *BookingResponse {
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
		ActualCost:      resp.ActualCost,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
