// Package parse turns the form's free-form duration and date tokens into
// structured values. Durations degrade to zero on garbage; dates fail loudly
// because a row without a date cannot be attributed to a challenge period
package parse

import (
	"strings"
	"time"

	perr "readathon/internal/platform/errors"
)

// dayLayout is the single fixed submission date format (day first)
const dayLayout = "2/1/2006"

// Minutes parses an "H:MM:SS" duration token into total whole minutes.
// Missing trailing components default to zero ("1:30" reads as 1h30m).
// Empty or malformed input yields 0: a duration the member garbled is
// "no reading logged", never an ingestion failure
func Minutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return 0
	}
	var hms [3]int
	for i, p := range parts {
		n, ok := atoi(strings.TrimSpace(p))
		if !ok {
			return 0
		}
		hms[i] = n
	}
	totalSeconds := hms[0]*3600 + hms[1]*60 + hms[2]
	return totalSeconds / 60
}

// Day parses the leading date token of raw as day/month/year, ignoring any
// trailing text (forms often append a weekday or a note after the date).
// The result is midnight UTC. A failed parse is an error so the caller can
// skip the whole row
func Day(raw string) (time.Time, error) {
	token := strings.TrimSpace(raw)
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	if token == "" {
		return time.Time{}, perr.InvalidArgf("empty date token")
	}
	t, err := time.ParseInLocation(dayLayout, token, time.UTC)
	if err != nil {
		return time.Time{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unparsable date token %q", token)
	}
	return t, nil
}

// atoi is a strict non-negative integer parse; empty is not a number.
// Components longer than six digits are rejected rather than allowed
// to overflow into a negative duration
func atoi(s string) (int, bool) {
	if s == "" || len(s) > 6 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}
