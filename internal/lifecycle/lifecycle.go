// Package lifecycle is the booking engine: it decides whether a booking
// request is admissible, what it costs, and which side effects it implies.
// Every operation is a pure function of its inputs; the current time and all
// identifiers are passed in, side effects come back as Intent values.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/pricing"
	"github.com/m04kA/SMC-VehicleService/internal/validation"
	"github.com/m04kA/SMC-VehicleService/pkg/ptr"
	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

// DefaultRulePrefix prefixes every deterministic scheduling key
const DefaultRulePrefix = "vehicle-service-reminders"

// ReminderLead is how far before the appointment the reminder fires
const ReminderLead = 24 * time.Hour

// FollowUpAfterDays is the delay between completion and the follow-up check-in
const FollowUpAfterDays = 7

// DefaultMaintenanceIntervalDays is the recurring maintenance cadence
const DefaultMaintenanceIntervalDays = 90

// Engine owns the booking state machine and derives side-effect intents
type Engine struct {
	rulePrefix string
}

// NewEngine creates an engine. An empty prefix selects DefaultRulePrefix.
func NewEngine(rulePrefix string) *Engine {
	if rulePrefix == "" {
		rulePrefix = DefaultRulePrefix
	}
	return &Engine{rulePrefix: rulePrefix}
}

// ReminderKey is the scheduling key of a booking's reminder
func (e *Engine) ReminderKey(bookingID string) string {
	return fmt.Sprintf("%s-%s", e.rulePrefix, bookingID)
}

// FollowUpKey is the scheduling key of a booking's post-service follow-up
func (e *Engine) FollowUpKey(bookingID string) string {
	return fmt.Sprintf("%s-followup-%s", e.rulePrefix, bookingID)
}

// MaintenanceKey is the scheduling key of a vehicle's recurring maintenance
func (e *Engine) MaintenanceKey(vehicleID string) string {
	return fmt.Sprintf("%s-maintenance-%s", e.rulePrefix, vehicleID)
}

// SubmitRequest is the input of Submit. EstimatedHours of zero selects the
// default; identifiers are assigned by the caller.
type SubmitRequest struct {
	BookingID         string
	CustomerID        string
	VehicleID         string
	ServiceCenterID   string
	ServiceType       domain.ServiceType
	BookingDate       string // YYYY-MM-DD
	ScheduledTime     string // HH:MM
	Notes             *string
	CustomerEmail     string
	ServiceCenterName string
	EstimatedHours    float64
}

// SubmitResult is the outcome of an accepted booking request
type SubmitResult struct {
	Booking domain.Booking
	Cost    pricing.Breakdown
	Intents []Intent
}

// Submit validates the requested slot, prices the service and builds a
// PENDING booking together with its derived side effects: a confirmation
// notice, a queue record and a reminder scheduled 24 hours before the slot.
// A rejected date/time short-circuits before any cost computation.
func (e *Engine) Submit(req SubmitRequest, now time.Time) (SubmitResult, error) {
	dateCheck := validation.BookingDate(req.BookingDate, req.ScheduledTime, now)
	if !dateCheck.Valid {
		return SubmitResult{}, &ValidationError{Field: "booking_date", Message: dateCheck.Message}
	}

	hours := req.EstimatedHours
	if hours <= 0 {
		hours = domain.DefaultEstimatedHours
	}
	cost := pricing.ServiceCost(req.ServiceType, hours, false, false, 0)

	scheduledAt := dateCheck.BookingAt
	y, m, d := scheduledAt.Date()
	booking := domain.Booking{
		ID:              req.BookingID,
		CustomerID:      req.CustomerID,
		VehicleID:       req.VehicleID,
		ServiceCenterID: req.ServiceCenterID,
		ServiceType:     req.ServiceType,
		Status:          domain.StatusPending,
		BookingDate:     time.Date(y, m, d, 0, 0, 0, 0, scheduledAt.Location()),
		ScheduledTime:   types.NewTimeString(scheduledAt),
		EstimatedCost:   ptr.Ptr(cost.EstimatedTotal),
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	fields := e.noticeFields(&booking)
	fields.ServiceCenterName = req.ServiceCenterName

	intents := []Intent{
		ConfirmationNotice(req.CustomerEmail, fields),
		EnqueueIntent{
			Type:     QueueBookingRequest,
			Priority: PriorityNormal,
			Payload: map[string]string{
				"booking_id":        booking.ID,
				"customer_id":       booking.CustomerID,
				"vehicle_id":        booking.VehicleID,
				"service_center_id": booking.ServiceCenterID,
				"service_type":      string(booking.ServiceType),
				"booking_date":      booking.BookingDate.Format(domain.DateFormat),
				"scheduled_time":    booking.ScheduledTime.String(),
			},
		},
		ScheduleIntent{
			RuleKey: e.ReminderKey(booking.ID),
			FireAt:  scheduledAt.Add(-ReminderLead),
			Notice:  ReminderNotice(req.CustomerEmail, fields),
		},
	}

	return SubmitResult{Booking: booking, Cost: cost, Intents: intents}, nil
}

// Cancel moves a booking to CANCELLED. Legal from any non-terminal state.
// It emits a cancellation notice and a descheduling intent whose key equals
// the one the reminder was scheduled under.
func (e *Engine) Cancel(b domain.Booking, customerEmail string, now time.Time) (domain.Booking, []Intent, error) {
	cancelled, err := domain.ApplyTransition(b, domain.StatusCancelled, now)
	if err != nil {
		return b, nil, err
	}

	intents := []Intent{
		CancellationNotice(customerEmail, e.noticeFields(&b)),
		DescheduleIntent{RuleKey: e.ReminderKey(b.ID)},
	}

	return cancelled, intents, nil
}

// Complete moves an IN_PROGRESS booking to COMPLETED, records the actual
// cost, and emits a completion notice, a queue record and a follow-up
// scheduled seven days after completion.
func (e *Engine) Complete(b domain.Booking, actualCost float64, customerEmail string, completionTime time.Time) (domain.Booking, []Intent, error) {
	completed, err := domain.ApplyTransition(b, domain.StatusCompleted, completionTime)
	if err != nil {
		return b, nil, err
	}
	completed.ActualCost = ptr.Ptr(actualCost)

	fields := e.noticeFields(&completed)
	fields.CompletionDate = completionTime.Format(domain.DateFormat)

	intents := []Intent{
		CompletionNotice(customerEmail, fields),
		EnqueueIntent{
			Type:     QueueServiceCompletion,
			Priority: PriorityNormal,
			Payload: map[string]string{
				"booking_id":   completed.ID,
				"service_type": string(completed.ServiceType),
				"actual_cost":  fmt.Sprintf("%.2f", actualCost),
			},
		},
		ScheduleIntent{
			RuleKey: e.FollowUpKey(completed.ID),
			FireAt:  completionTime.AddDate(0, 0, FollowUpAfterDays),
			Notice:  FollowUpNotice(customerEmail, fields),
		},
	}

	return completed, intents, nil
}

// ScheduleRecurringMaintenance derives a repeating reminder for a vehicle.
// No booking state is involved; an interval of zero selects the default.
func (e *Engine) ScheduleRecurringMaintenance(vehicleID, customerEmail string, intervalDays int, now time.Time) ScheduleIntent {
	if intervalDays <= 0 {
		intervalDays = DefaultMaintenanceIntervalDays
	}

	interval := time.Duration(intervalDays) * 24 * time.Hour
	return ScheduleIntent{
		RuleKey: e.MaintenanceKey(vehicleID),
		FireAt:  now.Add(interval),
		Repeat:  interval,
		Notice:  MaintenanceReminderNotice(customerEmail, vehicleID),
	}
}

func (e *Engine) noticeFields(b *domain.Booking) NoticeFields {
	return NoticeFields{
		BookingID:     b.ID,
		ServiceType:   string(b.ServiceType),
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		ScheduledTime: b.ScheduledTime.String(),
		EstimatedCost: b.EstimatedCost,
		ActualCost:    b.ActualCost,
	}
}
