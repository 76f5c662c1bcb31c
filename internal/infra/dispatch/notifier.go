// Package dispatch executes the side effects the booking engine derives:
// customer notices and queue records go to the NATS bus, scheduling intents
// go to the reminder registry.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/pkg/natsbus"
)

// Notifier публикует уведомления клиентов в шину
type Notifier struct {
	nc            *nats.Conn
	subjectPrefix string
	logger        Logger
}

// NewNotifier создает издателя уведомлений
func NewNotifier(nc *nats.Conn, subjectPrefix string, logger Logger) *Notifier {
	return &Notifier{
		nc:            nc,
		subjectPrefix: subjectPrefix,
		logger:        logger,
	}
}

// Send публикует уведомление в топик <prefix>.notifications
func (n *Notifier) Send(ctx context.Context, notice lifecycle.NoticeIntent) error {
	msg := NoticeMessage{
		Type:      string(notice.Type),
		Recipient: notice.RecipientEmail,
		Subject:   notice.Subject,
		Body:      notice.Body,
		BookingID: notice.BookingID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	subject := n.subjectPrefix + ".notifications"
	if err := natsbus.Publish(ctx, n.nc, subject, msg); err != nil {
		return fmt.Errorf("%w: Send - publish notice: %v", ErrPublish, err)
	}

	n.logger.Info("Notifier: notice published: type=%s, recipient=%s", notice.Type, notice.RecipientEmail)

	return nil
}
