package domain

import (
	"testing"
	"time"

	journaldomain "readathon/internal/services/journal/domain"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func pid(s string) *string { return &s }

func testPeriod(rules RuleSet) Period {
	p := Period{ID: "p1", Start: day(1), End: day(31), Rules: rules}
	p.Book.Title = "الأيام"
	return p
}

func TestEntryPointsFloorDivision(t *testing.T) {
	r := RuleSet{CommonMinutesPerPoint: 10}
	e := LogEntry{CommonMinutes: 95}
	if got := EntryPoints(e, r); got != 9 {
		t.Fatalf("95 minutes at 10/point = %d, want 9", got)
	}
}

func TestEntryPointsZeroDivisorDisables(t *testing.T) {
	e := LogEntry{CommonMinutes: 120, OtherMinutes: 60}
	if got := EntryPoints(e, RuleSet{OtherMinutesPerPoint: 30}); got != 2 {
		t.Fatalf("points = %d, want 2 (common path disabled)", got)
	}
}

func TestEntryPointsQuotes(t *testing.T) {
	r := RuleSet{QuoteCommonPoints: 3, QuoteOtherPoints: 2}
	e := LogEntry{QuoteCommon: true, QuoteOther: true}
	if got := EntryPoints(e, r); got != 5 {
		t.Fatalf("points = %d, want 5", got)
	}
}

func TestComputeEndToEnd(t *testing.T) {
	// one member, one 45 minute entry plus a finished-book milestone,
	// rules 10 minutes per point and 50 per finish: 4 + 50 = 54
	p := testPeriod(RuleSet{CommonMinutesPerPoint: 10, FinishCommonPoints: 50})
	members := []Member{{ID: "sara", Name: "سارة"}}
	logs := []LogEntry{{
		MemberID: "sara", PeriodID: pid("p1"),
		EntryDate: day(5), CommonMinutes: 45,
	}}
	achs := []Achievement{{
		MemberID: "sara", PeriodID: "p1",
		Kind: journaldomain.KindFinishedCommon, AchievedOn: day(5),
	}}

	ms, gs := Compute(logs, achs, []Period{p}, members)
	if len(ms) != 1 {
		t.Fatalf("members = %d", len(ms))
	}
	got := ms[0]
	if got.TotalPoints != 54 {
		t.Fatalf("points = %d, want 54", got.TotalPoints)
	}
	if got.CommonMinutes != 45 || got.CommonBooks != 1 {
		t.Fatalf("stats = %+v", got)
	}
	if len(gs) != 1 || gs[0].TotalMinutes != 45 || gs[0].ActiveMembers != 1 {
		t.Fatalf("group = %+v", gs)
	}
}

func TestComputeOutsidePeriodCountsMinutesNotPoints(t *testing.T) {
	p := testPeriod(RuleSet{CommonMinutesPerPoint: 1})
	members := []Member{{ID: "m"}}
	logs := []LogEntry{{
		MemberID: "m", PeriodID: nil,
		EntryDate: day(2), CommonMinutes: 30, QuoteCommon: true,
	}}

	ms, gs := Compute(logs, nil, []Period{p}, members)
	if ms[0].TotalPoints != 0 {
		t.Fatalf("points = %d, want 0", ms[0].TotalPoints)
	}
	if ms[0].CommonMinutes != 30 || ms[0].Quotes != 1 {
		t.Fatalf("stats = %+v", ms[0])
	}
	if gs[0].TotalMinutes != 0 || gs[0].ActiveMembers != 0 {
		t.Fatalf("group must ignore out-of-period entries: %+v", gs[0])
	}
}

func TestComputeFrozenRulesPerPeriod(t *testing.T) {
	// two periods with different divisors; each entry scores under its own
	early := Period{ID: "early", Start: day(1), End: day(10), Rules: RuleSet{CommonMinutesPerPoint: 10}}
	late := Period{ID: "late", Start: day(11), End: day(20), Rules: RuleSet{CommonMinutesPerPoint: 30}}
	members := []Member{{ID: "m"}}
	logs := []LogEntry{
		{MemberID: "m", PeriodID: pid("early"), EntryDate: day(5), CommonMinutes: 60},
		{MemberID: "m", PeriodID: pid("late"), EntryDate: day(15), CommonMinutes: 60},
	}

	ms, _ := Compute(logs, nil, []Period{early, late}, members)
	if ms[0].TotalPoints != 6+2 {
		t.Fatalf("points = %d, want 8", ms[0].TotalPoints)
	}
}

func TestComputeLeaderboardOrder(t *testing.T) {
	p := testPeriod(RuleSet{CommonMinutesPerPoint: 1})
	members := []Member{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	logs := []LogEntry{
		{MemberID: "b", PeriodID: pid("p1"), EntryDate: day(2), CommonMinutes: 10},
		{MemberID: "c", PeriodID: pid("p1"), EntryDate: day(2), CommonMinutes: 5},
	}

	ms, _ := Compute(logs, nil, []Period{p}, members)
	if ms[0].MemberID != "b" || ms[1].MemberID != "c" || ms[2].MemberID != "a" {
		t.Fatalf("order = %v %v %v", ms[0].MemberID, ms[1].MemberID, ms[2].MemberID)
	}
	if ms[2].TotalPoints != 0 {
		t.Fatalf("idle member should appear with zero points: %+v", ms[2])
	}
}

func TestComputeMeetingsAndLastDates(t *testing.T) {
	p := testPeriod(RuleSet{AttendPoints: 5})
	members := []Member{{ID: "m"}}
	logs := []LogEntry{
		{MemberID: "m", PeriodID: pid("p1"), EntryDate: day(3), QuoteCommon: true},
		{MemberID: "m", PeriodID: pid("p1"), EntryDate: day(8)},
	}
	achs := []Achievement{{MemberID: "m", PeriodID: "p1", Kind: journaldomain.KindAttended, AchievedOn: day(4)}}

	ms, _ := Compute(logs, achs, []Period{p}, members)
	got := ms[0]
	if got.Meetings != 1 || got.TotalPoints != 5 {
		t.Fatalf("stats = %+v", got)
	}
	if got.LastLogDate == nil || !got.LastLogDate.Equal(day(8)) {
		t.Fatalf("last log = %v", got.LastLogDate)
	}
	if got.LastQuoteDate == nil || !got.LastQuoteDate.Equal(day(3)) {
		t.Fatalf("last quote = %v", got.LastQuoteDate)
	}
}
