// Package service contains the sync engine
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/core/flagvocab"
	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/logger"
	pnet "readathon/internal/platform/net"
	"readathon/internal/platform/store"
	"readathon/internal/services/resync/domain"

	journaldomain "readathon/internal/services/journal/domain"
	memberdomain "readathon/internal/services/members/domain"
	perioddomain "readathon/internal/services/periods/domain"
	scoringdomain "readathon/internal/services/scoring/domain"
)

// Service defines the sync engine contract
type Service interface {
	domain.RunnerPort
	domain.StatusPort
}

// Svc implements the sync engine. One run at a time per club; a second
// trigger while that club's run is in flight is refused rather than queued.
// Runs for different clubs neither block nor see each other
type Svc struct {
	source  sheetrow.Fetcher
	members memberdomain.QueryPort
	periods perioddomain.QueryPort
	journal journaldomain.WriterPort
	scoring scoringdomain.RecomputePort
	vocab   *flagvocab.Classifier
	now     func() time.Time

	mu   sync.Mutex
	runs map[string]domain.Status
}

// New constructs the sync engine
func New(
	source sheetrow.Fetcher,
	members memberdomain.QueryPort,
	periods perioddomain.QueryPort,
	journal journaldomain.WriterPort,
	scoring scoringdomain.RecomputePort,
	vocab *flagvocab.Classifier,
) *Svc {
	if source == nil {
		panic("resync.Service requires a row source")
	}
	if members == nil || periods == nil || journal == nil || scoring == nil {
		panic("resync.Service requires members, periods, journal, and scoring ports")
	}
	if vocab == nil {
		vocab = flagvocab.Default()
	}
	return &Svc{
		source:  source,
		members: members,
		periods: periods,
		journal: journal,
		scoring: scoring,
		vocab:   vocab,
		now:     time.Now,
		runs:    make(map[string]domain.Status),
	}
}

func clubID(ctx context.Context) (string, error) {
	if id := pnet.TenantID(ctx); id != "" {
		return id, nil
	}
	if id, ok := store.TenantID(ctx); ok && id != "" {
		return id, nil
	}
	return "", perr.Unauthorizedf("club scope required")
}

// Status implements domain.StatusPort. A club that has never run is idle
func (s *Svc) Status(ctx context.Context) domain.Status {
	club, err := clubID(ctx)
	if err != nil {
		return domain.Status{State: domain.StateIdle}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.runs[club]; ok {
		return st
	}
	return domain.Status{State: domain.StateIdle}
}

func (s *Svc) setState(club string, st domain.State) {
	s.mu.Lock()
	cur := s.runs[club]
	cur.State = st
	s.runs[club] = cur
	s.mu.Unlock()
}

// Run implements domain.RunnerPort. The pass is wipe-and-rebuild: fetch the
// whole table, clear all derived rows for the club, re-ingest every row, then
// recompute standings. Nothing is mutated unless the fetch delivered a
// complete row set, so a dead source can never wipe standings
func (s *Svc) Run(ctx context.Context) (domain.Report, error) {
	club, err := clubID(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	s.mu.Lock()
	if cur := s.runs[club]; cur.State != "" && cur.State != domain.StateIdle {
		s.mu.Unlock()
		return domain.Report{}, perr.Conflictf("sync already running")
	}
	cur := s.runs[club]
	cur.State = domain.StateFetching
	s.runs[club] = cur
	s.mu.Unlock()

	log := logger.Named("resync")
	started := s.now().UTC()

	fail := func(err error) (domain.Report, error) {
		s.mu.Lock()
		st := s.runs[club]
		st.State = domain.StateIdle
		st.LastError = err.Error()
		s.runs[club] = st
		s.mu.Unlock()
		log.Error().Err(err).Msg("sync run failed")
		return domain.Report{}, err
	}

	rows, err := s.source.Fetch(ctx)
	if err != nil {
		return fail(perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetching response table"))
	}
	foldIdx, err := s.members.FoldIndex(ctx)
	if err != nil {
		return fail(err)
	}
	periods, err := s.periods.List(ctx)
	if err != nil {
		return fail(err)
	}

	s.setState(club, domain.StateClearing)
	if err := s.journal.Purge(ctx); err != nil {
		return fail(err)
	}

	s.setState(club, domain.StateIngesting)
	logs, achs, counts := buildBatch(club, rows, foldIdx, periods, s.vocab)
	if err := s.journal.Write(ctx, logs, achs); err != nil {
		return fail(err)
	}

	s.setState(club, domain.StateScoring)
	if err := s.scoring.Recompute(ctx); err != nil {
		return fail(err)
	}

	report := domain.Report{
		Counts:     counts,
		StartedAt:  started,
		FinishedAt: s.now().UTC(),
	}
	report.Lines = reportLines(counts)

	s.mu.Lock()
	s.runs[club] = domain.Status{
		State:      domain.StateIdle,
		LastRun:    report.FinishedAt,
		LastReport: &report,
	}
	s.mu.Unlock()

	log.Info().
		Int("fetched", counts.Fetched).
		Int("processed", counts.Processed).
		Int("unknown_name", counts.UnknownName).
		Int("bad_date", counts.BadDate).
		Int("achievements", counts.Achievements).
		Int("suppressed", counts.Suppressed).
		Dur("took", report.FinishedAt.Sub(started)).
		Msg("sync run complete")
	return report, nil
}

func reportLines(n domain.Counts) []string {
	return []string{
		fmt.Sprintf("fetched %d rows", n.Fetched),
		fmt.Sprintf("ingested %d entries (%d unknown names, %d unreadable dates skipped)",
			n.Processed, n.UnknownName, n.BadDate),
		fmt.Sprintf("%d entries fell outside every period", n.NoPeriod),
		fmt.Sprintf("detected %d achievements (%d duplicates suppressed)",
			n.Achievements, n.Suppressed),
		"standings recomputed",
	}
}
