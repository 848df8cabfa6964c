package dbmetrics

import "context"

type txContextKey struct{}

type readOnlyContextKey struct{}

// WithTx кладет транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// WithReadOnlyTx кладет read-only транзакцию в контекст
// Внутри таких транзакций репозитории не берут блокировки FOR UPDATE
func WithReadOnlyTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(WithTx(ctx, tx), readOnlyContextKey{}, true)
}

// GetExecutor возвращает транзакцию из контекста, если она есть,
// иначе переданный executor по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction сообщает, выполняется ли контекст внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// IsReadOnlyTransaction сообщает, открыта ли транзакция в контексте как read-only
func IsReadOnlyTransaction(ctx context.Context) bool {
	readOnly, ok := ctx.Value(readOnlyContextKey{}).(bool)
	return ok && readOnly
}
