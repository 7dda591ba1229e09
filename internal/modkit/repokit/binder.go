package repokit

// Binder builds a domain repo bound to a specific Queryer. Repos bind
// once to the pool for reads and rebind to the tx Queryer inside Tx,
// so the same SQL runs in both places
type Binder[T any] interface {
	Bind(Queryer) T
}
