package usecases

import "context"

// TxManager runs a multi-row write sequence inside one storage transaction.
// The lifecycle use cases rely on it so a failed step never leaves a base row
// without its extension rows (or the other way around).
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
