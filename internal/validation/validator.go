// Package validation implements the field validation rules for customer,
// vehicle and booking data. Every check returns a structured result value;
// invalid input is a normal outcome, not an error.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

var (
	// 2-3 uppercase letters, optional hyphen, 4-6 digits (e.g. ABC-1234)
	registrationPattern = regexp.MustCompile(`^[A-Z]{2,3}-?\d{4,6}$`)

	// 17 characters from the standard VIN alphabet (I, O, Q excluded)
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

	phoneSeparators = regexp.MustCompile(`[\s\-\(\)]`)
	phonePattern    = regexp.MustCompile(`^\+?1?\d{10}$`)
)

// Result is the outcome of a single-field check
type Result struct {
	Valid      bool
	Message    string
	Normalized string // cleaned value, empty when invalid
}

// RegistrationNumber checks a vehicle registration plate.
// The input is uppercased before matching; the normalized form is returned.
func RegistrationNumber(raw string) Result {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !registrationPattern.MatchString(normalized) {
		return Result{Message: "Invalid registration number format"}
	}
	return Result{Valid: true, Message: "Valid registration number", Normalized: normalized}
}

// VIN checks a vehicle identification number: exactly 17 characters,
// uppercase letters and digits excluding I, O and Q.
func VIN(raw string) Result {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" || !vinPattern.MatchString(normalized) {
		return Result{Message: "Invalid VIN format (must be 17 characters, alphanumeric)"}
	}
	return Result{Valid: true, Message: "Valid VIN", Normalized: normalized}
}

// Phone checks a phone number: after stripping spaces, hyphens and
// parentheses the value must be 10 digits with an optional +1 or 1 prefix.
// The stripped value is returned as the normalized form.
func Phone(raw string) Result {
	cleaned := phoneSeparators.ReplaceAllString(raw, "")
	if !phonePattern.MatchString(cleaned) {
		return Result{Message: "Invalid phone number format"}
	}
	return Result{Valid: true, Message: "Valid phone number", Normalized: cleaned}
}

// DateFailure classifies why a booking date was rejected
type DateFailure string

const (
	DateOK        DateFailure = ""
	DateMalformed DateFailure = "MALFORMED"
	DateNotFuture DateFailure = "NOT_IN_FUTURE"
	DateTooSoon   DateFailure = "TOO_SOON"
)

// DateResult is the outcome of a booking date/time check
type DateResult struct {
	Valid      bool
	Failure    DateFailure
	Message    string
	BookingAt  time.Time // parsed instant, zero when malformed
	HoursUntil float64   // hours from now to the booking, rounded to 2 decimals
}

// BookingDate checks that the combined date and time of day lies strictly in
// the future and at least one hour after now. The current time is an explicit
// input so callers control the clock.
func BookingDate(date, timeOfDay string, now time.Time) DateResult {
	bookingAt, err := parseBookingInstant(date, timeOfDay, now.Location())
	if err != nil {
		return DateResult{
			Failure: DateMalformed,
			Message: fmt.Sprintf("Invalid date/time format: %v", err),
		}
	}

	if !bookingAt.After(now) {
		return DateResult{
			Failure:   DateNotFuture,
			Message:   "Booking date/time must be in the future",
			BookingAt: bookingAt,
		}
	}

	hoursUntil := bookingAt.Sub(now).Hours()
	if hoursUntil < 1 {
		return DateResult{
			Failure:   DateTooSoon,
			Message:   "Booking must be at least 1 hour in advance",
			BookingAt: bookingAt,
		}
	}

	return DateResult{
		Valid:      true,
		Message:    "Valid booking date/time",
		BookingAt:  bookingAt,
		HoursUntil: round2(hoursUntil),
	}
}

// EligibilityResult is the outcome of a mileage-based eligibility check
type EligibilityResult struct {
	Eligible           bool
	ServiceType        domain.ServiceType
	CurrentMileage     int
	LastServiceMileage int
	MileageSinceLast   int
	RequiredMileage    int
	Message            string
}

// ServiceEligibility checks whether a vehicle has covered enough mileage
// since its last service to warrant the requested work. Unknown service
// types fail the check rather than defaulting.
func ServiceEligibility(currentMileage, lastServiceMileage int, serviceType domain.ServiceType) EligibilityResult {
	required, known := requiredMileage(serviceType)
	if !known {
		return EligibilityResult{
			ServiceType:        serviceType,
			CurrentMileage:     currentMileage,
			LastServiceMileage: lastServiceMileage,
			Message:            fmt.Sprintf("Unknown service type: %s", serviceType),
		}
	}

	since := currentMileage - lastServiceMileage
	result := EligibilityResult{
		ServiceType:        serviceType,
		CurrentMileage:     currentMileage,
		LastServiceMileage: lastServiceMileage,
		MileageSinceLast:   since,
		RequiredMileage:    required,
	}

	if since >= required {
		result.Eligible = true
		result.Message = "Vehicle is eligible for service"
		return result
	}

	result.Message = fmt.Sprintf("Vehicle needs %d more miles before next service", required-since)
	return result
}

// requiredMileage is the mileage interval table. The switch is exhaustive
// over the known service types; the boolean marks unknown values.
func requiredMileage(st domain.ServiceType) (int, bool) {
	switch st {
	case domain.ServiceOilChange:
		return 3000, true
	case domain.ServiceTireRotation:
		return 5000, true
	case domain.ServiceBrakeService:
		return 10000, true
	case domain.ServiceEngineDiagnostic:
		return 0, true // can be done anytime
	case domain.ServiceFullService:
		return 10000, true
	case domain.ServiceGeneralRepair:
		return 0, true // can be done anytime
	default:
		return 0, false
	}
}

func parseBookingInstant(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	combined := date + "T" + timeOfDay
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", combined, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(domain.DateTimeFormat, combined, loc)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
