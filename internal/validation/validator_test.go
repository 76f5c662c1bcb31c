package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

func TestRegistrationNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
	}{
		{name: "two letters with hyphen", input: "AB-1234", valid: true, normalized: "AB-1234"},
		{name: "three letters no hyphen", input: "ABC12345", valid: true, normalized: "ABC12345"},
		{name: "lowercase is normalized", input: "abc-1234", valid: true, normalized: "ABC-1234"},
		{name: "six digits", input: "AB-123456", valid: true, normalized: "AB-123456"},
		{name: "too few digits", input: "AB-123", valid: false},
		{name: "too many digits", input: "AB-1234567", valid: false},
		{name: "one letter", input: "A-1234", valid: false},
		{name: "four letters", input: "ABCD-1234", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegistrationNumber(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.normalized, got.Normalized)
			if tt.valid {
				assert.Equal(t, "Valid registration number", got.Message)
			} else {
				assert.Equal(t, "Invalid registration number format", got.Message)
			}
		})
	}
}

func TestVIN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid 17 chars", input: "1HGBH41JXMN109186", valid: true},
		{name: "lowercase normalized", input: "1hgbh41jxmn109186", valid: true},
		{name: "contains I", input: "IHGBH41JXMN109186", valid: false},
		{name: "contains O", input: "1HGBH41JXMN10918O", valid: false},
		{name: "contains Q", input: "1HGBH41JXMN1091Q6", valid: false},
		{name: "too short", input: "1HGBH41JXMN10918", valid: false},
		{name: "too long", input: "1HGBH41JXMN1091867", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VIN(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
	}{
		{name: "bare 10 digits", input: "5551234567", valid: true, normalized: "5551234567"},
		{name: "formatted", input: "(555) 123-4567", valid: true, normalized: "5551234567"},
		{name: "with country code", input: "+1 555 123 4567", valid: true, normalized: "+15551234567"},
		{name: "leading one", input: "1-555-123-4567", valid: true, normalized: "15551234567"},
		{name: "too short", input: "555-1234", valid: false},
		{name: "too long", input: "555123456789", valid: false},
		{name: "letters", input: "555-CALL-NOW", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.normalized, got.Normalized)
		})
	}
}

func TestBookingDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("malformed", func(t *testing.T) {
		got := BookingDate("15-06-2025", "14:00", now)
		assert.False(t, got.Valid)
		assert.Equal(t, DateMalformed, got.Failure)
	})

	t.Run("in the past", func(t *testing.T) {
		got := BookingDate("2025-06-14", "14:00", now)
		assert.False(t, got.Valid)
		assert.Equal(t, DateNotFuture, got.Failure)
		assert.Equal(t, "Booking date/time must be in the future", got.Message)
	})

	t.Run("exactly now", func(t *testing.T) {
		got := BookingDate("2025-06-15", "10:00", now)
		assert.False(t, got.Valid)
		assert.Equal(t, DateNotFuture, got.Failure)
	})

	t.Run("59 minutes ahead is too soon", func(t *testing.T) {
		got := BookingDate("2025-06-15", "10:59", now)
		assert.False(t, got.Valid)
		assert.Equal(t, DateTooSoon, got.Failure)
		assert.Equal(t, "Booking must be at least 1 hour in advance", got.Message)
	})

	t.Run("61 minutes ahead is accepted", func(t *testing.T) {
		got := BookingDate("2025-06-15", "11:01", now)
		assert.True(t, got.Valid)
		assert.Equal(t, DateOK, got.Failure)
		assert.InDelta(t, 1.02, got.HoursUntil, 0.001)
	})

	t.Run("exactly one hour is accepted", func(t *testing.T) {
		got := BookingDate("2025-06-15", "11:00", now)
		assert.True(t, got.Valid)
		assert.Equal(t, 1.0, got.HoursUntil)
	})

	t.Run("with seconds", func(t *testing.T) {
		got := BookingDate("2025-06-16", "09:30:00", now)
		assert.True(t, got.Valid)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC), got.BookingAt)
	})
}

func TestServiceEligibility(t *testing.T) {
	t.Run("eligible when interval covered", func(t *testing.T) {
		got := ServiceEligibility(45000, 41000, domain.ServiceOilChange)
		assert.True(t, got.Eligible)
		assert.Equal(t, 4000, got.MileageSinceLast)
		assert.Equal(t, 3000, got.RequiredMileage)
		assert.Equal(t, "Vehicle is eligible for service", got.Message)
	})

	t.Run("not eligible reports remaining miles", func(t *testing.T) {
		got := ServiceEligibility(42000, 41000, domain.ServiceTireRotation)
		assert.False(t, got.Eligible)
		assert.Equal(t, "Vehicle needs 4000 more miles before next service", got.Message)
	})

	t.Run("diagnostic has no interval", func(t *testing.T) {
		got := ServiceEligibility(42000, 42000, domain.ServiceEngineDiagnostic)
		assert.True(t, got.Eligible)
		assert.Equal(t, 0, got.RequiredMileage)
	})

	t.Run("boundary is eligible", func(t *testing.T) {
		got := ServiceEligibility(44000, 41000, domain.ServiceOilChange)
		assert.True(t, got.Eligible)
	})

	t.Run("unknown service type fails", func(t *testing.T) {
		got := ServiceEligibility(50000, 0, domain.ServiceType("CAR_WASH"))
		assert.False(t, got.Eligible)
		assert.Equal(t, "Unknown service type: CAR_WASH", got.Message)
	})
}
