package domain

import "time"

// ServiceCenter represents a service center location
type ServiceCenter struct {
	ID              string
	Name            string
	Address         string
	City            string
	State           string
	ZipCode         string
	Phone           string
	Email           string
	ServicesOffered []ServiceType
	WorkingHours    string
	Rating          *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OffersService returns true if the center performs the given service type
func (c *ServiceCenter) OffersService(st ServiceType) bool {
	for _, offered := range c.ServicesOffered {
		if offered == st {
			return true
		}
	}
	return false
}
