package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// BookingStatuses lists every known status in lifecycle order
func BookingStatuses() []BookingStatus {
	return []BookingStatus{
		StatusPending,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}
}

// ParseBookingStatus converts a raw string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBookingStatus, s)
	}
}

// Valid returns true if the status is one of the known values
func (s BookingStatus) Valid() bool {
	_, err := ParseBookingStatus(string(s))
	return err == nil
}

// ServiceType represents the category of maintenance work requested
type ServiceType string

const (
	ServiceOilChange        ServiceType = "OIL_CHANGE"
	ServiceTireRotation     ServiceType = "TIRE_ROTATION"
	ServiceBrakeService     ServiceType = "BRAKE_SERVICE"
	ServiceEngineDiagnostic ServiceType = "ENGINE_DIAGNOSTIC"
	ServiceFullService      ServiceType = "FULL_SERVICE"
	ServiceGeneralRepair    ServiceType = "GENERAL_REPAIR"
)

// ServiceTypes lists every known service type in declaration order
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceOilChange,
		ServiceTireRotation,
		ServiceBrakeService,
		ServiceEngineDiagnostic,
		ServiceFullService,
		ServiceGeneralRepair,
	}
}

// ParseServiceType converts a raw string into a ServiceType
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case ServiceOilChange, ServiceTireRotation, ServiceBrakeService,
		ServiceEngineDiagnostic, ServiceFullService, ServiceGeneralRepair:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownServiceType, s)
	}
}

// Valid returns true if the service type is one of the known values
func (s ServiceType) Valid() bool {
	_, err := ParseServiceType(string(s))
	return err == nil
}

// Booking represents a scheduled service appointment for a vehicle
type Booking struct {
	ID              string
	CustomerID      string
	VehicleID       string
	ServiceCenterID string
	ServiceType     ServiceType
	Status          BookingStatus
	BookingDate     time.Time // calendar day of the appointment
	ScheduledTime   types.TimeString
	EstimatedCost   *float64
	ActualCost      *float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ScheduledAt combines the booking date and time of day into a single instant
func (b *Booking) ScheduledAt() time.Time {
	return b.ScheduledTime.At(b.BookingDate)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CustomerID      *string        // Фильтр по клиенту (опционально)
	VehicleID       *string        // Фильтр по автомобилю (опционально)
	ServiceCenterID *string        // Фильтр по сервисному центру (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	ServiceType     *ServiceType   // Фильтр по типу услуги (опционально)
	FromDate        *time.Time     // Начало периода (опционально, если nil - без ограничения)
	ToDate          *time.Time     // Конец периода (опционально, если nil - без ограничения)
}

// IsActive returns true if the booking has not reached a terminal state
func (b *Booking) IsActive() bool {
	return !IsTerminal(b.Status)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the service has been performed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}
