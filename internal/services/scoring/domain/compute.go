package domain

import (
	"sort"
	"time"

	ptime "readathon/internal/platform/time"
	journaldomain "readathon/internal/services/journal/domain"
)

// minutePoints awards one point per full divisor of minutes, floor division.
// A non-positive divisor disables the path
func minutePoints(minutes, divisor int) int {
	if divisor <= 0 {
		return 0
	}
	return minutes / divisor
}

// EntryPoints scores one log entry under the given rules. The caller resolves
// the rules from the entry's own period; entries outside every period earn
// nothing, which is why this is never called for them
func EntryPoints(e LogEntry, r RuleSet) int {
	pts := minutePoints(e.CommonMinutes, r.CommonMinutesPerPoint)
	pts += minutePoints(e.OtherMinutes, r.OtherMinutesPerPoint)
	if e.QuoteCommon {
		pts += r.QuoteCommonPoints
	}
	if e.QuoteOther {
		pts += r.QuoteOtherPoints
	}
	return pts
}

// AchievementPoints scores one milestone under its period's rules
func AchievementPoints(a Achievement, r RuleSet) int {
	switch a.Kind {
	case journaldomain.KindFinishedCommon:
		return r.FinishCommonPoints
	case journaldomain.KindFinishedOther:
		return r.FinishOtherPoints
	case journaldomain.KindAttended:
		return r.AttendPoints
	}
	return 0
}

// Compute derives every standing from scratch. It is a pure function of its
// inputs; the persisted stats tables are nothing but its cached output.
// Members with no activity still appear with zeroed standings
func Compute(
	logs []LogEntry,
	achievements []Achievement,
	periods []Period,
	members []Member,
) ([]MemberStats, []GroupStats) {
	byPeriod := make(map[string]Period, len(periods))
	for _, p := range periods {
		byPeriod[p.ID] = p
	}

	stats := make(map[string]*MemberStats, len(members))
	order := make([]string, 0, len(members))
	for _, m := range members {
		stats[m.ID] = &MemberStats{MemberID: m.ID, Name: m.Name}
		order = append(order, m.ID)
	}

	type groupAcc struct {
		minutes int
		quotes  int
		readers map[string]struct{}
	}
	groups := make(map[string]*groupAcc, len(periods))
	for _, p := range periods {
		groups[p.ID] = &groupAcc{readers: map[string]struct{}{}}
	}

	maxDate := func(cur *time.Time, d time.Time) *time.Time {
		if cur == nil || d.After(*cur) {
			return ptime.Ptr(d)
		}
		return cur
	}

	for i := range logs {
		e := logs[i]
		ms, ok := stats[e.MemberID]
		if !ok {
			// log for a member missing from the roster snapshot; count nothing
			continue
		}
		ms.CommonMinutes += e.CommonMinutes
		ms.OtherMinutes += e.OtherMinutes
		if e.QuoteCommon {
			ms.Quotes++
		}
		if e.QuoteOther {
			ms.Quotes++
		}
		ms.LastLogDate = maxDate(ms.LastLogDate, e.EntryDate)
		if e.QuoteCommon || e.QuoteOther {
			ms.LastQuoteDate = maxDate(ms.LastQuoteDate, e.EntryDate)
		}

		// minutes and quote counters accumulate regardless of period, but
		// points require the entry's own frozen rules
		if e.PeriodID == nil {
			continue
		}
		p, ok := byPeriod[*e.PeriodID]
		if !ok {
			continue
		}
		ms.TotalPoints += EntryPoints(e, p.Rules)

		g := groups[p.ID]
		g.minutes += e.CommonMinutes + e.OtherMinutes
		if e.QuoteCommon {
			g.quotes++
		}
		if e.QuoteOther {
			g.quotes++
		}
		g.readers[e.MemberID] = struct{}{}
	}

	for i := range achievements {
		a := achievements[i]
		ms, ok := stats[a.MemberID]
		if !ok {
			continue
		}
		switch a.Kind {
		case journaldomain.KindFinishedCommon:
			ms.CommonBooks++
		case journaldomain.KindFinishedOther:
			ms.OtherBooks++
		case journaldomain.KindAttended:
			ms.Meetings++
		}
		if p, ok := byPeriod[a.PeriodID]; ok {
			ms.TotalPoints += AchievementPoints(a, p.Rules)
		}
	}

	mout := make([]MemberStats, 0, len(order))
	for _, id := range order {
		mout = append(mout, *stats[id])
	}
	sort.SliceStable(mout, func(i, j int) bool {
		if mout[i].TotalPoints != mout[j].TotalPoints {
			return mout[i].TotalPoints > mout[j].TotalPoints
		}
		return mout[i].MemberID < mout[j].MemberID
	})

	gout := make([]GroupStats, 0, len(periods))
	for _, p := range periods {
		g := groups[p.ID]
		gout = append(gout, GroupStats{
			PeriodID:      p.ID,
			BookTitle:     p.Book.Title,
			TotalMinutes:  g.minutes,
			TotalQuotes:   g.quotes,
			ActiveMembers: len(g.readers),
		})
	}
	return mout, gout
}
