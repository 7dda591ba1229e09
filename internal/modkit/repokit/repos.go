// Package repokit carries the shared types SQL repos are written against
package repokit

import (
	"readathon/internal/platform/store"
)

type (
	// Queryer is the read and write surface a repo binds to. It is the
	// pool outside a transaction and the tx inside one
	Queryer = store.RowQuerier

	// TxRunner executes a function inside a transaction
	TxRunner = store.TxRunner

	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports what a write did
	CommandTag = store.CommandTag
)
