package domain

import "context"

// WriterPort mutates the roster
type WriterPort interface {
	Enroll(ctx context.Context, in EnrollInput) (Member, error)
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
}

// QueryPort reads the roster
type QueryPort interface {
	List(ctx context.Context, in ListInput) ([]Member, error)
	// FoldIndex maps folded member name to member id, active and inactive alike.
	// The ingestion pass matches rows through this
	FoldIndex(ctx context.Context) (map[string]string, error)
}
