package models

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/reports"
)

// Request модели

// CreateCustomerRequest запрос на регистрацию клиента
type CreateCustomerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zip_code,omitempty"`
}

// UpdateCustomerRequest запрос на обновление данных клиента
// Указанные поля замещают текущие значения, nil-поля не изменяются
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zip_code,omitempty"`
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	ZipCode   *string   `json:"zip_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ServiceHistoryResponse отчет по истории обслуживания клиента
type ServiceHistoryResponse struct {
	TotalServices       int            `json:"total_services"`
	TotalAmountSpent    float64        `json:"total_amount_spent"`
	AverageServiceCost  float64        `json:"average_service_cost"`
	ServicesByType      map[string]int `json:"services_by_type"`
	MostFrequentService string         `json:"most_frequent_service"`
	GeneratedAt         time.Time      `json:"generated_at"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, customer := range customers {
		if customerResp := FromDomainCustomer(customer); customerResp != nil {
			resp.Customers = append(resp.Customers, *customerResp)
		}
	}

	return resp
}

// FromReportHistory конвертирует отчет ядра в DTO
func FromReportHistory(h reports.CustomerHistory) *ServiceHistoryResponse {
	byType := make(map[string]int, len(h.ServicesByType))
	for st, n := range h.ServicesByType {
		byType[string(st)] = n
	}

	return &ServiceHistoryResponse{
		TotalServices:       h.TotalServices,
		TotalAmountSpent:    h.TotalAmountSpent,
		AverageServiceCost:  h.AverageServiceCost,
		ServicesByType:      byType,
		MostFrequentService: string(h.MostFrequentService),
		GeneratedAt:         h.GeneratedAt,
	}
}
