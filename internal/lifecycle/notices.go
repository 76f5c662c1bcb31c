package lifecycle

import "fmt"

// Notification subjects
const (
	subjectConfirmation = "Booking Confirmation - Vehicle Service"
	subjectReminder     = "Reminder: Upcoming Vehicle Service"
	subjectCompletion   = "Service Completed - Vehicle Service"
	subjectCancellation = "Booking Cancelled - Vehicle Service"
)

// NoticeFields carries the substitutions for customer notice templates.
// Missing text fields render as "N/A"; missing amounts render as "$0.00".
type NoticeFields struct {
	BookingID         string
	ServiceType       string
	BookingDate       string
	ScheduledTime     string
	ServiceCenterName string
	EstimatedCost     *float64
	ActualCost        *float64
	CompletionDate    string
}

// ConfirmationNotice builds the booking confirmation message
func ConfirmationNotice(recipientEmail string, f NoticeFields) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

Your vehicle service booking has been confirmed!

Booking Details:
- Booking ID: %s
- Service Type: %s
- Date: %s
- Time: %s
- Service Center: %s
- Estimated Cost: %s

We look forward to serving you!

Best regards,
Vehicle Service Team`,
		orNA(f.BookingID),
		orNA(f.ServiceType),
		orNA(f.BookingDate),
		orNA(f.ScheduledTime),
		orNA(f.ServiceCenterName),
		money(f.EstimatedCost),
	)

	return NoticeIntent{
		Type:           NoticeBookingConfirmation,
		RecipientEmail: recipientEmail,
		Subject:        subjectConfirmation,
		Body:           body,
		BookingID:      f.BookingID,
	}
}

// ReminderNotice builds the upcoming appointment reminder message
func ReminderNotice(recipientEmail string, f NoticeFields) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

This is a reminder about your upcoming vehicle service appointment.

Appointment Details:
- Booking ID: %s
- Service Type: %s
- Date: %s
- Time: %s
- Service Center: %s

Please arrive 10 minutes before your scheduled time.

Best regards,
Vehicle Service Team`,
		orNA(f.BookingID),
		orNA(f.ServiceType),
		orNA(f.BookingDate),
		orNA(f.ScheduledTime),
		orNA(f.ServiceCenterName),
	)

	return NoticeIntent{
		Type:           NoticeBookingReminder,
		RecipientEmail: recipientEmail,
		Subject:        subjectReminder,
		Body:           body,
		BookingID:      f.BookingID,
	}
}

// CompletionNotice builds the service completion message
func CompletionNotice(recipientEmail string, f NoticeFields) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

Your vehicle service has been completed!

Service Details:
- Service Type: %s
- Total Cost: %s
- Completion Date: %s

Your vehicle is ready for pickup. Thank you for choosing our service!

Best regards,
Vehicle Service Team`,
		orNA(f.ServiceType),
		money(f.ActualCost),
		orNA(f.CompletionDate),
	)

	return NoticeIntent{
		Type:           NoticeServiceCompletion,
		RecipientEmail: recipientEmail,
		Subject:        subjectCompletion,
		Body:           body,
		BookingID:      f.BookingID,
	}
}

// CancellationNotice builds the booking cancellation message
func CancellationNotice(recipientEmail string, f NoticeFields) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

Your vehicle service booking has been cancelled.

Cancelled Booking Details:
- Booking ID: %s
- Service Type: %s
- Original Date: %s
- Original Time: %s

If you'd like to reschedule, please create a new booking.

Best regards,
Vehicle Service Team`,
		orNA(f.BookingID),
		orNA(f.ServiceType),
		orNA(f.BookingDate),
		orNA(f.ScheduledTime),
	)

	return NoticeIntent{
		Type:           NoticeBookingCancellation,
		RecipientEmail: recipientEmail,
		Subject:        subjectCancellation,
		Body:           body,
		BookingID:      f.BookingID,
	}
}

// FollowUpNotice builds the post-service follow-up message
func FollowUpNotice(recipientEmail string, f NoticeFields) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

It has been a week since your %s service.

We hope your vehicle is running well. If anything feels off, please book a
follow-up inspection at your service center.

Best regards,
Vehicle Service Team`,
		orNA(f.ServiceType),
	)

	return NoticeIntent{
		Type:           NoticeBookingReminder,
		RecipientEmail: recipientEmail,
		Subject:        subjectReminder,
		Body:           body,
		BookingID:      f.BookingID,
	}
}

// MaintenanceReminderNotice builds the recurring maintenance message
func MaintenanceReminderNotice(recipientEmail, vehicleID string) NoticeIntent {
	body := fmt.Sprintf(`Dear Customer,

Your vehicle is due for its regular maintenance check.

Vehicle ID: %s

Please create a booking at your preferred service center.

Best regards,
Vehicle Service Team`,
		orNA(vehicleID),
	)

	return NoticeIntent{
		Type:           NoticeBookingReminder,
		RecipientEmail: recipientEmail,
		Subject:        subjectReminder,
		Body:           body,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f", *v)
}
