package simpletxmanager

import (
	"context"
)

type scopeKey struct{}

// TransactionManager сериализует операции записи внутри одного процесса
// Используется с хранилищами без транзакций (redis, память): одна запись в момент времени,
// поэтому read-modify-write всего набора бронирований не перемешивается с другой записью
type TransactionManager struct {
	sem chan struct{}
}

// NewTransactionManager создает менеджер с единственным писателем
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{sem: make(chan struct{}, 1)}
}

// Do выполняет fn под эксклюзивной блокировкой
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
// Вложенные вызовы с тем же контекстом не блокируются повторно
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(scopeKey{}) != nil {
		return fn(ctx)
	}

	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-m.sem }()

	return fn(context.WithValue(ctx, scopeKey{}, struct{}{}))
}
