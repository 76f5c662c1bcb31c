package dispatch

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// Dispatcher направляет интенты ядра исполнителям
type Dispatcher struct {
	notifier NoticeSender
	queue    QueueSender
	schedule ScheduleRegistry
	logger   Logger
}

// NewDispatcher создает диспетчер побочных эффектов
func NewDispatcher(notifier NoticeSender, queue QueueSender, schedule ScheduleRegistry, logger Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		queue:    queue,
		schedule: schedule,
		logger:   logger,
	}
}

// Dispatch выполняет побочные эффекты бронирования.
// Доставка является best-effort: ошибка одного интента логируется и не
// прерывает обработку остальных, состояние бронирования уже зафиксировано.
func (d *Dispatcher) Dispatch(ctx context.Context, intents []lifecycle.Intent) {
	for _, intent := range intents {
		switch it := intent.(type) {
		case lifecycle.NoticeIntent:
			if err := d.notifier.Send(ctx, it); err != nil {
				d.logger.Error("Dispatcher: notice delivery failed: type=%s, error=%v", it.Type, err)
			}
		case lifecycle.EnqueueIntent:
			if err := d.queue.Enqueue(ctx, it); err != nil {
				d.logger.Error("Dispatcher: queue publish failed: type=%s, error=%v", it.Type, err)
			}
		case lifecycle.ScheduleIntent:
			d.schedule.Schedule(it)
			d.logger.Info("Dispatcher: reminder scheduled: rule_key=%s", it.RuleKey)
		case lifecycle.DescheduleIntent:
			d.schedule.Cancel(it.RuleKey)
			d.logger.Info("Dispatcher: reminder cancelled: rule_key=%s", it.RuleKey)
		default:
			d.logger.Warn("Dispatcher: unknown intent kind: %T", intent)
		}
	}
}
