package models

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/validation"
)

// Request модели

// CreateVehicleRequest запрос на регистрацию автомобиля
type CreateVehicleRequest struct {
	CustomerID         string  `json:"customer_id"`
	RegistrationNumber string  `json:"registration_number"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	Color              *string `json:"color,omitempty"`
	VIN                *string `json:"vin,omitempty"`
	Mileage            *int    `json:"mileage,omitempty"`
}

// UpdateVehicleRequest запрос на обновление автомобиля
// Изменяемые поля ограничены цветом и пробегом
type UpdateVehicleRequest struct {
	Color   *string `json:"color,omitempty"`
	Mileage *int    `json:"mileage,omitempty"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	RegistrationNumber string    `json:"registration_number"`
	VIN                *string   `json:"vin,omitempty"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	Color              *string   `json:"color,omitempty"`
	Mileage            int       `json:"mileage"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VehicleListResponse ответ со списком автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FieldCheck результат проверки одного поля
type FieldCheck struct {
	IsValid    bool   `json:"is_valid"`
	Message    string `json:"message"`
	Normalized string `json:"normalized_value,omitempty"`
}

// ValidationReportResponse отчет о проверке данных автомобиля
type ValidationReportResponse struct {
	VehicleID              string     `json:"vehicle_id"`
	RegistrationValidation FieldCheck `json:"registration_validation"`
	VINValidation          FieldCheck `json:"vin_validation"`
}

// EligibilityResponse результат проверки допуска к обслуживанию по пробегу
type EligibilityResponse struct {
	VehicleID               string `json:"vehicle_id"`
	IsEligible              bool   `json:"is_eligible"`
	ServiceType             string `json:"service_type"`
	CurrentMileage          int    `json:"current_mileage"`
	LastServiceMileage      int    `json:"last_service_mileage"`
	MileageSinceLastService int    `json:"mileage_since_last_service"`
	RequiredMileage         int    `json:"required_mileage"`
	Message                 string `json:"message"`
}

// MaintenanceScheduleResponse подтверждение регистрации регулярного напоминания
type MaintenanceScheduleResponse struct {
	VehicleID       string    `json:"vehicle_id"`
	RuleKey         string    `json:"rule_key"`
	IntervalDays    int       `json:"interval_days"`
	FirstReminderAt time.Time `json:"first_reminder_at"`
}

// Методы конвертации

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		RegistrationNumber: v.RegistrationNumber,
		VIN:                v.VIN,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		Mileage:            v.Mileage,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}

	for _, vehicle := range vehicles {
		if vehicleResp := FromDomainVehicle(vehicle); vehicleResp != nil {
			resp.Vehicles = append(resp.Vehicles, *vehicleResp)
		}
	}

	return resp
}

// FromValidationResult конвертирует результат валидатора в DTO
func FromValidationResult(r validation.Result) FieldCheck {
	return FieldCheck{
		IsValid:    r.Valid,
		Message:    r.Message,
		Normalized: r.Normalized,
	}
}

// FromEligibilityResult конвертирует результат проверки допуска в DTO
func FromEligibilityResult(vehicleID string, r validation.EligibilityResult) *EligibilityResponse {
	return &EligibilityResponse{
		VehicleID:               vehicleID,
		IsEligible:              r.Eligible,
		ServiceType:             string(r.ServiceType),
		CurrentMileage:          r.CurrentMileage,
		LastServiceMileage:      r.LastServiceMileage,
		MileageSinceLastService: r.MileageSinceLast,
		RequiredMileage:         r.RequiredMileage,
		Message:                 r.Message,
	}
}
