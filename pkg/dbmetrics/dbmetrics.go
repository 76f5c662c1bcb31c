// Package dbmetrics оборачивает *sql.DB, снимая метрики запросов и пула
// соединений, и пробрасывает активную транзакцию через context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

const poolStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс исполнителя запросов: *sql.DB, *sql.Tx или обертки.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor исполнитель внутри транзакции.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Collector метрики, снимаемые оберткой.
type Collector interface {
	ObserveDBQuery(operation string, durationSec float64, err error)
	SetDBPoolStats(open, idle, inUse int, waitCount int64, waitDurationSec float64)
}

// DB обертка над *sql.DB с метриками.
type DB struct {
	db        *sql.DB
	collector Collector
	service   string
}

// Wrap оборачивает db коллектором метрик.
func Wrap(db *sql.DB, collector Collector, service string) *DB {
	return &DB{db: db, collector: collector, service: service}
}

// WrapWithDefault оборачивает db и запускает периодический сбор статистики
// пула соединений до закрытия stopCh.
func WrapWithDefault(db *sql.DB, collector Collector, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, service)
	go wrapped.collectPoolStats(poolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата, фиксируя метрики.
func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.db.ExecContext(ctx, query, args...)
	w.collector.ObserveDBQuery("exec", time.Since(start).Seconds(), err)
	return res, err
}

// QueryContext выполняет запрос с множественным результатом, фиксируя метрики.
func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.collector.ObserveDBQuery("query", time.Since(start).Seconds(), err)
	return rows, err
}

// QueryRowContext выполняет запрос с единственной строкой результата.
// Ошибка выполнения будет видна только при Scan, поэтому фиксируется без нее.
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.collector.ObserveDBQuery("query_row", time.Since(start).Seconds(), nil)
	return row
}

// BeginTx открывает транзакцию; возвращаемый исполнитель также снимает метрики.
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := w.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, collector: w.collector}, nil
}

func (w *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s := w.db.Stats()
			w.collector.SetDBPoolStats(
				s.OpenConnections,
				s.Idle,
				s.InUse,
				s.WaitCount,
				s.WaitDuration.Seconds(),
			)
		}
	}
}

// metricsTx транзакция с метриками запросов.
type metricsTx struct {
	tx        *sql.Tx
	collector Collector
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_exec", time.Since(start).Seconds(), err)
	return res, err
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query", time.Since(start).Seconds(), err)
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query_row", time.Since(start).Seconds(), nil)
	return row
}

func (t *metricsTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}
