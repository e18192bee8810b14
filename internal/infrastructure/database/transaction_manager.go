package database

import (
	"context"
	"sync"

	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/repository"
	"hbnb-api/pkg/logger"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

// txKey is the key for storing the active transaction in context
const txKey contextKey = "memory_transaction"

type txMode int

const (
	readMode txMode = iota + 1
	writeMode
)

// txState is shared by every nested call of one transaction. hooks is only
// touched by the goroutine holding the write lock.
type txState struct {
	mode  txMode
	hooks []func()
}

// MemoryTransactionManager implements TransactionManager for the in-process
// store with one process-wide reader/writer lock. There is nothing to roll
// back: entities validate before they mutate.
type MemoryTransactionManager struct {
	mu     sync.RWMutex
	logger logger.Logger
}

// NewMemoryTransactionManager creates a new in-memory transaction manager
func NewMemoryTransactionManager(logger logger.Logger) repository.TransactionManager {
	return &MemoryTransactionManager{
		logger: logger,
	}
}

// WithTransaction executes fn holding the write lock. Commit hooks run after
// the lock is released.
func (tm *MemoryTransactionManager) WithTransaction(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	if state := stateFromContext(ctx); state != nil {
		if state.mode == writeMode {
			return fn(ctx)
		}
		tm.logger.Error("Write requested inside a read-only transaction")
		return domainError.NewInternalError("write inside read-only transaction", nil)
	}

	state := &txState{mode: writeMode}
	if err := tm.runLocked(ctx, state, fn); err != nil {
		if len(state.hooks) > 0 {
			tm.logger.Debug("Dropping commit hooks of failed transaction",
				logger.Int("hooks", len(state.hooks)),
			)
		}
		return err
	}

	for _, hook := range state.hooks {
		hook()
	}
	return nil
}

func (tm *MemoryTransactionManager) runLocked(
	ctx context.Context,
	state *txState,
	fn func(ctx context.Context) error,
) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(context.WithValue(ctx, txKey, state))
}

// WithReadTransaction executes fn holding the read lock. Inside a write
// transaction it simply runs fn.
func (tm *MemoryTransactionManager) WithReadTransaction(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	if stateFromContext(ctx) != nil {
		return fn(ctx)
	}

	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return fn(context.WithValue(ctx, txKey, &txState{mode: readMode}))
}

// AfterCommit defers fn until the enclosing write transaction has released
// the lock.
func (tm *MemoryTransactionManager) AfterCommit(ctx context.Context, fn func()) {
	if state := stateFromContext(ctx); state != nil && state.mode == writeMode {
		state.hooks = append(state.hooks, fn)
		return
	}
	fn()
}

func stateFromContext(ctx context.Context) *txState {
	state, _ := ctx.Value(txKey).(*txState)
	return state
}
