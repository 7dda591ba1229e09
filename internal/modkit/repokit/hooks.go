package repokit

import "context"

// BeginHook runs at the start of every transaction with the tx bound
// Queryer, before the caller's function. The api module uses one to
// stamp the club id GUC so row filters see the right tenant
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner so hooks run inside each tx first
func WithBeginHooks(next TxRunner, hooks ...BeginHook) TxRunner {
	return txWithHooks{next: next, hooks: hooks}
}

type txWithHooks struct {
	next  TxRunner
	hooks []BeginHook
}

func (t txWithHooks) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return t.next.Tx(ctx, func(q Queryer) error {
		for _, hook := range t.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// non-tx calls pass straight through

func (t txWithHooks) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	return t.next.Exec(ctx, query, args...)
}

func (t txWithHooks) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return t.next.Query(ctx, query, args...)
}

func (t txWithHooks) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.next.QueryRow(ctx, query, args...)
}
