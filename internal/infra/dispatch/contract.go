package dispatch

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// NoticeSender доставляет уведомления клиентов
type NoticeSender interface {
	Send(ctx context.Context, notice lifecycle.NoticeIntent) error
}

// QueueSender публикует записи очереди работ
type QueueSender interface {
	Enqueue(ctx context.Context, intent lifecycle.EnqueueIntent) error
}

// ScheduleRegistry управляет правилами напоминаний по ключу
type ScheduleRegistry interface {
	Schedule(intent lifecycle.ScheduleIntent)
	Cancel(ruleKey string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
