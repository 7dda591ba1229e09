package domain

import "context"

// WriterPort mutates the schedule
type WriterPort interface {
	Create(ctx context.Context, in CreateInput) (Period, error)
	Delete(ctx context.Context, in DeleteInput) error
	PutDefaultRules(ctx context.Context, r RuleSet) error
}

// QueryPort reads the schedule
type QueryPort interface {
	List(ctx context.Context) ([]Period, error)
	DefaultRules(ctx context.Context) (RuleSet, error)
}
