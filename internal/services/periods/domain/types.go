// Package domain defines the types and interfaces for the periods service
package domain

import "time"

// RuleSet is the scoring rule block. Minute divisors award one point per full
// divisor of minutes; a zero or negative divisor disables that path entirely.
// The flat values are awarded per occurrence
type RuleSet struct {
	CommonMinutesPerPoint int `json:"common_minutes_per_point"`
	OtherMinutesPerPoint  int `json:"other_minutes_per_point"`
	FinishCommonPoints    int `json:"finish_common_points"`
	FinishOtherPoints     int `json:"finish_other_points"`
	AttendPoints          int `json:"attend_points"`
	QuoteCommonPoints     int `json:"quote_common_points"`
	QuoteOtherPoints      int `json:"quote_other_points"`
}

// Book is a club reading title
type Book struct {
	ID     string `json:"id"` // uuid
	ClubID string `json:"-"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// Period is one scheduled reading window. Rules are copied from the club
// defaults at creation and never change afterwards, so rule edits only affect
// future periods
type Period struct {
	ID     string    `json:"id"` // uuid
	ClubID string    `json:"-"`
	Book   Book      `json:"book"`
	Start  time.Time `json:"start"` // UTC midnight
	End    time.Time `json:"end"`   // UTC midnight, inclusive
	Rules  RuleSet   `json:"rules"`
}

// Contains reports whether day falls inside the period, both ends inclusive
func (p Period) Contains(day time.Time) bool {
	return !day.Before(p.Start) && !day.After(p.End)
}

// Overlaps reports whether two periods share at least one day
func (p Period) Overlaps(o Period) bool {
	return !p.Start.After(o.End) && !o.Start.After(p.End)
}

// Resolve returns the first period whose window contains day, in slice order.
// Days outside every period return ok false, which downstream treats as
// "minutes count, nothing else does"
func Resolve(day time.Time, periods []Period) (Period, bool) {
	for _, p := range periods {
		if p.Contains(day) {
			return p, true
		}
	}
	return Period{}, false
}

// CreateInput creates a period. Dates are DD/MM/YYYY or YYYY-MM-DD
type CreateInput struct {
	BookTitle  string `json:"book_title" validate:"required,min=1"`
	BookAuthor string `json:"book_author"`
	BookYear   int    `json:"book_year"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
}

// DeleteInput deletes a period
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}
