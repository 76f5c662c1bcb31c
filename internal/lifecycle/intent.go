package lifecycle

import "time"

// Intent is a side effect derived from a lifecycle operation. The engine
// describes what should happen as plain data; a dispatcher decides how.
type Intent interface {
	isIntent()
}

// NoticeType enumerates customer notification kinds
type NoticeType string

const (
	NoticeBookingConfirmation NoticeType = "BOOKING_CONFIRMATION"
	NoticeBookingReminder     NoticeType = "BOOKING_REMINDER"
	NoticeServiceCompletion   NoticeType = "SERVICE_COMPLETION"
	NoticeBookingCancellation NoticeType = "BOOKING_CANCELLATION"
)

// NoticeIntent asks the notification collaborator to deliver a message
type NoticeIntent struct {
	Type           NoticeType
	RecipientEmail string
	Subject        string
	Body           string
	BookingID      string
}

func (NoticeIntent) isIntent() {}

// QueueMessageType enumerates work-queue record kinds
type QueueMessageType string

const (
	QueueBookingRequest    QueueMessageType = "BOOKING_REQUEST"
	QueueServiceCompletion QueueMessageType = "SERVICE_COMPLETION"
	QueuePaymentProcessing QueueMessageType = "PAYMENT_PROCESSING"
)

// PriorityNormal is the default queue record priority
const PriorityNormal = "NORMAL"

// EnqueueIntent asks the queue collaborator to persist a work record
type EnqueueIntent struct {
	Type     QueueMessageType
	Priority string
	Payload  map[string]string
}

func (EnqueueIntent) isIntent() {}

// ScheduleIntent asks the scheduler to fire a notice at a given instant.
// The rule key is deterministic so the event can later be cancelled by key
// alone, without a lookup table.
type ScheduleIntent struct {
	RuleKey string
	FireAt  time.Time
	Repeat  time.Duration // 0 = one-shot
	Notice  NoticeIntent
}

func (ScheduleIntent) isIntent() {}

// DescheduleIntent asks the scheduler to cancel a previously scheduled event
type DescheduleIntent struct {
	RuleKey string
}

func (DescheduleIntent) isIntent() {}
