package ports

import "context"

// TxRunner executes fn inside a single transactional boundary. Repository
// calls made with the context passed to fn join the same transaction, so
// multi-entity writes (shipment insert + hub load bump) commit or roll back
// together.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTxRunner runs fn without any transaction. Used in tests and for
// deployments against standalone Mongo instances without replica sets.
type NopTxRunner struct{}

func (NopTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
