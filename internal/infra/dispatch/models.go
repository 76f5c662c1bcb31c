package dispatch

// NoticeMessage формат уведомления в шине
type NoticeMessage struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	BookingID string `json:"booking_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// QueueEnvelope формат записи очереди работ в шине
type QueueEnvelope struct {
	MessageType string            `json:"message_type"`
	Data        map[string]string `json:"data"`
	Timestamp   string            `json:"timestamp"`
}
