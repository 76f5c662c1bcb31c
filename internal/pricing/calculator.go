// Package pricing computes service costs, discounts and duration estimates.
// All amounts are USD float64; values are rounded to 2 decimals only when the
// result is assembled, internal arithmetic keeps full precision.
package pricing

import (
	"math"
	"strings"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

const (
	LaborRatePerHour       = 75.00
	WeekendSurchargeRate   = 0.15
	UrgentServiceSurcharge = 50.00
	TaxRate                = 0.08

	// fallback values for service types missing from the tables
	defaultBasePrice     = 100.00
	defaultDurationHours = 1.0

	Currency = "USD"
)

// Breakdown is the itemized result of a cost estimate
type Breakdown struct {
	ServiceType         domain.ServiceType
	BaseServiceCost     float64
	LaborCost           float64
	EstimatedHours      float64
	LaborRatePerHour    float64
	AdditionalPartsCost float64
	WeekendSurcharge    float64
	UrgentSurcharge     float64
	Subtotal            float64 // base + labor + parts, before surcharges
	TotalBeforeTax      float64
	Tax                 float64
	TaxRate             float64
	EstimatedTotal      float64
	Currency            string
}

// ServiceCost estimates the cost of a single service. The ordering is
// contractual: surcharges are applied to the subtotal first, tax is computed
// on the surcharge-inclusive amount.
func ServiceCost(serviceType domain.ServiceType, estimatedHours float64, isWeekend, isUrgent bool, additionalPartsCost float64) Breakdown {
	base := basePrice(serviceType)
	labor := estimatedHours * LaborRatePerHour
	subtotal := base + labor + additionalPartsCost

	weekendSurcharge := 0.0
	if isWeekend {
		weekendSurcharge = subtotal * WeekendSurchargeRate
	}

	urgentSurcharge := 0.0
	if isUrgent {
		urgentSurcharge = UrgentServiceSurcharge
	}

	totalBeforeTax := subtotal + weekendSurcharge + urgentSurcharge
	tax := totalBeforeTax * TaxRate
	total := totalBeforeTax + tax

	return Breakdown{
		ServiceType:         serviceType,
		BaseServiceCost:     round2(base),
		LaborCost:           round2(labor),
		EstimatedHours:      estimatedHours,
		LaborRatePerHour:    LaborRatePerHour,
		AdditionalPartsCost: round2(additionalPartsCost),
		WeekendSurcharge:    round2(weekendSurcharge),
		UrgentSurcharge:     round2(urgentSurcharge),
		Subtotal:            round2(subtotal),
		TotalBeforeTax:      round2(totalBeforeTax),
		Tax:                 round2(tax),
		TaxRate:             TaxRate,
		EstimatedTotal:      round2(total),
		Currency:            Currency,
	}
}

// Discount is the result of a discount calculation
type Discount struct {
	OriginalCost   float64
	DiscountRate   float64
	DiscountAmount float64
	FinalCost      float64
}

// BulkDiscount grants a percentage off for booking several services at once:
// 2+ services 5%, 3+ services 10%, 5+ services 15%.
func BulkDiscount(totalCost float64, numServices int) Discount {
	rate := 0.0
	switch {
	case numServices >= 5:
		rate = 0.15
	case numServices >= 3:
		rate = 0.10
	case numServices >= 2:
		rate = 0.05
	}

	amount := totalCost * rate
	return Discount{
		OriginalCost:   round2(totalCost),
		DiscountRate:   rate,
		DiscountAmount: round2(amount),
		FinalCost:      round2(totalCost - amount),
	}
}

// MembershipDiscount grants a percentage off by membership tier.
// The tier is case-insensitive; unknown tiers get no discount.
func MembershipDiscount(totalCost float64, tier string) Discount {
	rate := membershipRate(tier)
	amount := totalCost * rate
	return Discount{
		OriginalCost:   round2(totalCost),
		DiscountRate:   rate,
		DiscountAmount: round2(amount),
		FinalCost:      round2(totalCost - amount),
	}
}

// DurationEstimate is the expected time a service takes
type DurationEstimate struct {
	ServiceType domain.ServiceType
	Hours       float64
	Minutes     int
}

// ServiceDuration estimates how long a service takes
func ServiceDuration(serviceType domain.ServiceType) DurationEstimate {
	hours := durationHours(serviceType)
	return DurationEstimate{
		ServiceType: serviceType,
		Hours:       hours,
		Minutes:     int(hours * 60),
	}
}

// basePrice looks up the base price for a service type.
// Unknown types deliberately fall back to a flat price instead of failing.
func basePrice(st domain.ServiceType) float64 {
	switch st {
	case domain.ServiceOilChange:
		return 50.00
	case domain.ServiceTireRotation:
		return 40.00
	case domain.ServiceBrakeService:
		return 150.00
	case domain.ServiceEngineDiagnostic:
		return 100.00
	case domain.ServiceFullService:
		return 300.00
	case domain.ServiceGeneralRepair:
		return 80.00
	default:
		return defaultBasePrice
	}
}

// durationHours looks up the duration table.
// Unknown types deliberately fall back to one hour instead of failing.
func durationHours(st domain.ServiceType) float64 {
	switch st {
	case domain.ServiceOilChange:
		return 0.5
	case domain.ServiceTireRotation:
		return 0.75
	case domain.ServiceBrakeService:
		return 2.0
	case domain.ServiceEngineDiagnostic:
		return 1.5
	case domain.ServiceFullService:
		return 4.0
	case domain.ServiceGeneralRepair:
		return 2.0
	default:
		return defaultDurationHours
	}
}

func membershipRate(tier string) float64 {
	switch strings.ToUpper(strings.TrimSpace(tier)) {
	case "BRONZE":
		return 0.05
	case "SILVER":
		return 0.10
	case "GOLD":
		return 0.15
	case "PLATINUM":
		return 0.20
	default:
		return 0.0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
