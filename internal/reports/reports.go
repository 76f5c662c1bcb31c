// Package reports contains pure reducers over booking collections.
// No reducer mutates its input or performs I/O; the report timestamp is an
// explicit argument so callers stay in control of the clock.
package reports

import (
	"math"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

// Summary aggregates a booking collection by volume and revenue
type Summary struct {
	TotalBookings       int
	TotalRevenue        float64
	AverageBookingValue float64
	ByStatus            map[domain.BookingStatus]int
	ByServiceType       map[domain.ServiceType]int
	GeneratedAt         time.Time
}

// CustomerHistory aggregates one customer's bookings
type CustomerHistory struct {
	TotalServices       int
	TotalAmountSpent    float64
	AverageServiceCost  float64
	ServicesByType      map[domain.ServiceType]int
	MostFrequentService domain.ServiceType
	GeneratedAt         time.Time
}

// CenterPerformance aggregates one service center's bookings
type CenterPerformance struct {
	TotalBookings            int
	CompletedBookings        int
	CancelledBookings        int
	CompletionRate           float64
	CancellationRate         float64
	TotalRevenue             float64
	AverageRevenuePerBooking float64
	GeneratedAt              time.Time
}

// Monthly is a Summary restricted to one calendar month
type Monthly struct {
	Month time.Month
	Year  int
	Summary
}

// BookingSummary reduces bookings to totals and histograms. Revenue counts
// the actual cost when recorded, otherwise the estimate.
func BookingSummary(bookings []domain.Booking, now time.Time) Summary {
	s := Summary{
		TotalBookings: len(bookings),
		ByStatus:      make(map[domain.BookingStatus]int),
		ByServiceType: make(map[domain.ServiceType]int),
		GeneratedAt:   now,
	}

	for i := range bookings {
		b := &bookings[i]
		s.ByStatus[b.Status]++
		s.ByServiceType[b.ServiceType]++
		s.TotalRevenue += bookingRevenue(b)
	}

	s.TotalRevenue = round2(s.TotalRevenue)
	if s.TotalBookings > 0 {
		s.AverageBookingValue = round2(s.TotalRevenue / float64(s.TotalBookings))
	}

	return s
}

// CustomerServiceHistory reduces one customer's bookings. The most frequent
// service type breaks ties by the lexicographically smallest name so repeated
// runs over the same data agree.
func CustomerServiceHistory(bookings []domain.Booking, now time.Time) CustomerHistory {
	h := CustomerHistory{
		TotalServices:  len(bookings),
		ServicesByType: make(map[domain.ServiceType]int),
		GeneratedAt:    now,
	}

	for i := range bookings {
		b := &bookings[i]
		h.ServicesByType[b.ServiceType]++
		h.TotalAmountSpent += bookingRevenue(b)
	}

	h.TotalAmountSpent = round2(h.TotalAmountSpent)
	if h.TotalServices > 0 {
		h.AverageServiceCost = round2(h.TotalAmountSpent / float64(h.TotalServices))
	}

	best := 0
	for st, n := range h.ServicesByType {
		if n > best || (n == best && st < h.MostFrequentService) {
			best = n
			h.MostFrequentService = st
		}
	}

	return h
}

// ServiceCenterPerformance reduces one center's bookings. Revenue counts only
// actual costs of COMPLETED bookings; rates are percentages of the total.
func ServiceCenterPerformance(bookings []domain.Booking, now time.Time) CenterPerformance {
	p := CenterPerformance{
		TotalBookings: len(bookings),
		GeneratedAt:   now,
	}

	for i := range bookings {
		b := &bookings[i]
		switch b.Status {
		case domain.StatusCompleted:
			p.CompletedBookings++
			if b.ActualCost != nil {
				p.TotalRevenue += *b.ActualCost
			}
		case domain.StatusCancelled:
			p.CancelledBookings++
		}
	}

	p.TotalRevenue = round2(p.TotalRevenue)
	if p.TotalBookings > 0 {
		p.CompletionRate = round2(float64(p.CompletedBookings) / float64(p.TotalBookings) * 100)
		p.CancellationRate = round2(float64(p.CancelledBookings) / float64(p.TotalBookings) * 100)
	}
	if p.CompletedBookings > 0 {
		p.AverageRevenuePerBooking = round2(p.TotalRevenue / float64(p.CompletedBookings))
	}

	return p
}

// MonthlyReport filters bookings whose booking date falls in the given
// calendar month and reduces them like BookingSummary.
func MonthlyReport(month time.Month, year int, bookings []domain.Booking, now time.Time) Monthly {
	var filtered []domain.Booking
	for i := range bookings {
		if bookings[i].BookingDate.Month() == month && bookings[i].BookingDate.Year() == year {
			filtered = append(filtered, bookings[i])
		}
	}

	return Monthly{
		Month:   month,
		Year:    year,
		Summary: BookingSummary(filtered, now),
	}
}

func bookingRevenue(b *domain.Booking) float64 {
	if b.ActualCost != nil {
		return *b.ActualCost
	}
	if b.EstimatedCost != nil {
		return *b.EstimatedCost
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
