package adapter

import "context"

// TxManager runs a function inside a single storage transaction. Repository
// calls made with the context it passes to fn join that transaction, so a
// failure anywhere rolls back every write. Registration uses this to make
// "create user + seed defaults" an all-or-nothing unit.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
