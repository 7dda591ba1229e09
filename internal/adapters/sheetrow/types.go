// Package sheetrow adapts the external form provider: it fetches the complete
// published response table and pushes the selectable member-name list back to
// the form. The engine treats the table as an opaque ordered row set
package sheetrow

import (
	"context"
	"sort"
	"time"
)

// Raw is one untouched form response row. Every field is a string exactly as
// the provider exported it; normalization happens in the ingestion pipeline
type Raw struct {
	SubmittedAt  string // provider submission timestamp, dedup and order key
	MemberName   string
	DateToken    string // reading date as typed, possibly with trailing text
	CommonHMS    string // duration read in the common book, H:MM:SS
	OtherHMS     string // duration read in other books, H:MM:SS
	Achievements string // free-text milestone checkboxes joined by the form
	Quotes       string // free-text quote checkboxes joined by the form
}

// Fetcher pulls the complete current row set. A failed fetch must return an
// error and no rows; partial tables would corrupt a resync
type Fetcher interface {
	Fetch(ctx context.Context) ([]Raw, error)
}

// NamePusher updates the form's selectable member-name list. This is a side
// interface for enrollment, not part of scoring
type NamePusher interface {
	Push(ctx context.Context, names []string) error
}

// submittedLayout is the provider's timestamp export format
const submittedLayout = "2/1/2006 15:04:05"

// SortBySubmission orders rows by ascending submission timestamp, which the
// ingestion pipeline relies on for first-occurrence achievement semantics.
// Unparsable timestamps sort by their raw string after all parsed ones,
// stably, so reruns see the same order
func SortBySubmission(rows []Raw) {
	type keyed struct {
		row Raw
		t   time.Time
		ok  bool
	}
	keys := make([]keyed, len(rows))
	for i, r := range rows {
		t, err := time.ParseInLocation(submittedLayout, r.SubmittedAt, time.UTC)
		keys[i] = keyed{row: r, t: t, ok: err == nil}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ki, kj := keys[i], keys[j]
		switch {
		case ki.ok && kj.ok:
			return ki.t.Before(kj.t)
		case ki.ok:
			return true
		case kj.ok:
			return false
		default:
			return ki.row.SubmittedAt < kj.row.SubmittedAt
		}
	})
	for i := range keys {
		rows[i] = keys[i].row
	}
}
