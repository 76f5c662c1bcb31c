package domain

import "time"

// Vehicle represents a customer's vehicle
type Vehicle struct {
	ID                 string
	CustomerID         string
	RegistrationNumber string
	VIN                *string
	Make               string
	Model              string
	Year               int
	Color              *string
	Mileage            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DisplayName returns a human-readable vehicle description
func (v *Vehicle) DisplayName() string {
	return v.Make + " " + v.Model
}
