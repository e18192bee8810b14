package repository

import (
	"context"
)

// TransactionManager serializes units of work against the repositories.
// The transaction travels in the context handed to fn; calling either method
// again with that context runs fn inline instead of waiting on itself.
type TransactionManager interface {
	// WithTransaction executes fn with exclusive access to the store
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// WithReadTransaction executes fn with shared, read-only access
	WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// AfterCommit runs fn once the outermost write transaction in ctx has
	// succeeded and released the store. Without a write transaction in ctx,
	// fn runs immediately. Hooks of a failed transaction are dropped.
	AfterCommit(ctx context.Context, fn func())
}
