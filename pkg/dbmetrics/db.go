package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/resilientmind/coaching-platform/pkg/metrics"
)

// DBExecutor общий интерфейс для выполнения запросов
// Реализуется *sql.DB, *dbmetrics.DB и транзакционными обёртками
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, собирающая метрики запросов
type DB struct {
	db          *sql.DB
	collector   *metrics.Metrics
	serviceName string
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор метрик connection pool
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{
		db:          db,
		collector:   collector,
		serviceName: serviceName,
	}

	go wrapped.collectPoolStats(stopCh)

	return wrapped
}

// collectPoolStats периодически снимает статистику connection pool
func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.SetDBPoolStats(stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

// ExecContext выполняет запрос с фиксацией метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery("exec", time.Since(start), err)
	return result, err
}

// QueryContext выполняет запрос с фиксацией метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с фиксацией метрик
// Ошибка доступна только при Scan, поэтому здесь фиксируется только длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию, исполнитель которой тоже собирает метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricsTxWrapper{tx: tx, collector: d.collector}, nil
}

// metricsTxWrapper транзакция с метриками
type metricsTxWrapper struct {
	tx        *sql.Tx
	collector *metrics.Metrics
}

func (t *metricsTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_exec", time.Since(start), err)
	return result, err
}

func (t *metricsTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

func (t *metricsTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query_row", time.Since(start), nil)
	return row
}

func (t *metricsTxWrapper) Commit() error   { return t.tx.Commit() }
func (t *metricsTxWrapper) Rollback() error { return t.tx.Rollback() }

// SqlTxWrapper обёртка над *sql.Tx без метрик (для simpletxmanager)
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (t *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.Tx.QueryRowContext(ctx, query, args...)
}

func (t *SqlTxWrapper) Commit() error   { return t.Tx.Commit() }
func (t *SqlTxWrapper) Rollback() error { return t.Tx.Rollback() }
