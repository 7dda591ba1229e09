// Package domain defines the types and interfaces for the journal service.
// Everything here is derived data: each sync run rebuilds it wholesale from
// the fetched response table, so rows are immutable and never patched
package domain

import "time"

// AchievementKind enumerates the milestone kinds the detector emits
type AchievementKind string

// Achievement kinds
const (
	KindFinishedCommon AchievementKind = "finished_common_book"
	KindFinishedOther  AchievementKind = "finished_other_book"
	KindAttended       AchievementKind = "attended_discussion"
)

// OncePerPeriod reports whether the kind is awarded at most once per member
// and period. Finishing side books is the one repeatable milestone
func (k AchievementKind) OncePerPeriod() bool {
	return k == KindFinishedCommon || k == KindAttended
}

// LogEntry is one normalized reading submission
type LogEntry struct {
	ID            string  // uuid
	ClubID        string  // uuid
	MemberID      string  // uuid
	PeriodID      *string // nil when the entry date falls outside every period
	SubmittedAt   string  // provider timestamp, kept raw for ordering and audit
	EntryDate     time.Time
	CommonMinutes int
	OtherMinutes  int
	QuoteCommon   bool
	QuoteOther    bool
}

// Achievement is one detected milestone. Milestones only exist inside a
// period, so PeriodID is never empty
type Achievement struct {
	ID         string // uuid
	ClubID     string // uuid
	MemberID   string // uuid
	PeriodID   string // uuid
	Kind       AchievementKind
	AchievedOn time.Time
	BookID     *string // the period's book for common finishes, else nil
}
