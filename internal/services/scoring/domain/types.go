// Package domain defines the scoring types and the pure scoring pass
package domain

import (
	"time"

	journaldomain "readathon/internal/services/journal/domain"
	memberdomain "readathon/internal/services/members/domain"
	perioddomain "readathon/internal/services/periods/domain"
)

// Aliases for the upstream shapes the scoring pass consumes
type (
	// RuleSet is the frozen per-period rule block
	RuleSet = perioddomain.RuleSet
	// Period is one scheduled reading window
	Period = perioddomain.Period
	// LogEntry is one normalized reading submission
	LogEntry = journaldomain.LogEntry
	// Achievement is one detected milestone
	Achievement = journaldomain.Achievement
	// Member is one enrolled reader
	Member = memberdomain.Member
)

// MemberStats is one member's standing, recomputed wholesale every sync
type MemberStats struct {
	MemberID      string     `json:"member_id"`
	Name          string     `json:"name"`
	TotalPoints   int        `json:"total_points"`
	CommonMinutes int        `json:"common_minutes"`
	OtherMinutes  int        `json:"other_minutes"`
	CommonBooks   int        `json:"common_books"`
	OtherBooks    int        `json:"other_books"`
	Quotes        int        `json:"quotes"`
	Meetings      int        `json:"meetings"`
	LastLogDate   *time.Time `json:"last_log_date,omitempty"`
	LastQuoteDate *time.Time `json:"last_quote_date,omitempty"`
}

// GroupStats is one period's aggregate
type GroupStats struct {
	PeriodID      string `json:"period_id"`
	BookTitle     string `json:"book_title"`
	TotalMinutes  int    `json:"total_minutes"`
	TotalQuotes   int    `json:"total_quotes"`
	ActiveMembers int    `json:"active_members"`
}
