package domain

import "context"

// RecomputePort rebuilds the persisted standings from the journal
type RecomputePort interface {
	Recompute(ctx context.Context) error
}

// QueryPort reads the persisted standings
type QueryPort interface {
	Leaderboard(ctx context.Context) ([]MemberStats, error)
	GroupSummary(ctx context.Context) ([]GroupStats, error)
}
