package sheetrow

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Column headers as exported by the form provider. Matching is
// case-insensitive and whitespace-trimmed; extra columns are ignored
const (
	colSubmittedAt  = "timestamp"
	colMemberName   = "name"
	colDate         = "date"
	colCommonHMS    = "common_duration"
	colOtherHMS     = "other_duration"
	colAchievements = "achievements"
	colQuotes       = "quotes"
)

// HTTPFetcher fetches the published CSV export of the response sheet
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher builds a fetcher for the given export URL with a client timeout
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Fetch downloads and parses the full sheet, returning rows ordered by
// submission timestamp. Any transport, status, or CSV structure error fails
// the whole fetch; a half-read table is worse than none
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheetrow: unexpected status %d for %s", resp.StatusCode, f.URL)
	}
	rows, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	SortBySubmission(rows)
	return rows, nil
}

// Parse reads a CSV export. The first record is the header row; columns are
// located by name so the provider may reorder or append columns freely
func Parse(r io.Reader) ([]Raw, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // provider pads short rows inconsistently

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("sheetrow: reading header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colSubmittedAt, colMemberName, colDate} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("sheetrow: missing column %q", required)
		}
	}

	pick := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []Raw
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sheetrow: reading row %d: %w", len(out)+2, err)
		}
		out = append(out, Raw{
			SubmittedAt:  pick(rec, colSubmittedAt),
			MemberName:   pick(rec, colMemberName),
			DateToken:    pick(rec, colDate),
			CommonHMS:    pick(rec, colCommonHMS),
			OtherHMS:     pick(rec, colOtherHMS),
			Achievements: pick(rec, colAchievements),
			Quotes:       pick(rec, colQuotes),
		})
	}
	return out, nil
}
