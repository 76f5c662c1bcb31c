package domain

import "time"

// Customer represents a registered customer
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
