package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/pkg/natsbus"
)

// Queue публикует записи очереди работ в шину
type Queue struct {
	nc            *nats.Conn
	subjectPrefix string
	logger        Logger
}

// NewQueue создает издателя записей очереди
func NewQueue(nc *nats.Conn, subjectPrefix string, logger Logger) *Queue {
	return &Queue{
		nc:            nc,
		subjectPrefix: subjectPrefix,
		logger:        logger,
	}
}

// Enqueue публикует запись в топик <prefix>.queue
// Приоритет передается в заголовке сообщения
func (q *Queue) Enqueue(ctx context.Context, intent lifecycle.EnqueueIntent) error {
	envelope := QueueEnvelope{
		MessageType: string(intent.Type),
		Data:        intent.Payload,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	header := nats.Header{"Priority": []string{intent.Priority}}

	subject := q.subjectPrefix + ".queue"
	if err := natsbus.PublishWithHeader(ctx, q.nc, subject, envelope, header); err != nil {
		return fmt.Errorf("%w: Enqueue - publish record: %v", ErrPublish, err)
	}

	q.logger.Info("Queue: record published: type=%s, priority=%s", intent.Type, intent.Priority)

	return nil
}
