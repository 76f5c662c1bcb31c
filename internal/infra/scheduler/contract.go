package scheduler

import (
	"context"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

// Notifier доставляет уведомление при срабатывании правила
type Notifier interface {
	Send(ctx context.Context, notice lifecycle.NoticeIntent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
