package dbmetrics

import "context"

type contextKey struct{}

var txContextKey = contextKey{}

// WithTx кладёт активную транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction проверяет наличие активной транзакции в контексте
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey).(TxExecutor)
	return ok
}
