package domain

import "context"

// WriterPort rebuilds the derived store. Purge then Write is the sync engine's
// clearing and ingesting phases; a failure between the two leaves an empty
// journal and the next run repairs it
type WriterPort interface {
	Purge(ctx context.Context) error
	Write(ctx context.Context, logs []LogEntry, achievements []Achievement) error
}

// QueryPort reads the derived store for scoring and the API
type QueryPort interface {
	Snapshot(ctx context.Context) ([]LogEntry, []Achievement, error)
	ListByMember(ctx context.Context, memberID string) ([]LogEntry, error)
}
