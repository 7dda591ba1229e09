package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"readathon/internal/modkit/repokit"
	"readathon/internal/platform/config"
	"readathon/internal/platform/logger"
	"readathon/internal/platform/store"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/core/flagvocab"

	journalrepo "readathon/internal/services/journal/repo"
	journalsvc "readathon/internal/services/journal/service"
	membersrepo "readathon/internal/services/members/repo"
	memberssvc "readathon/internal/services/members/service"
	periodsrepo "readathon/internal/services/periods/repo"
	periodssvc "readathon/internal/services/periods/service"
	resyncsvc "readathon/internal/services/resync/service"
	scoringrepo "readathon/internal/services/scoring/repo"
	scoringsvc "readathon/internal/services/scoring/service"
)

// one-shot sync pass for a single club, meant for cron and operator shells
func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	sheet := root.Prefix("SYNC_SHEET_")

	l := logger.Get()

	var (
		fClub    = flag.String("club", "", "club id (uuid) to sync")
		fTimeout = flag.Duration("timeout", 10*time.Minute, "overall run deadline")
	)
	flag.Parse()

	if _, err := uuid.Parse(*fClub); err != nil {
		l.Panic().Str("club", *fClub).Msg("must provide -club with a valid uuid")
	}

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	repokit.MustGuard(context.Background(), st)
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	fetchTO := time.Duration(sheet.MayInt("TIMEOUT_SECONDS", 30)) * time.Second
	source := sheetrow.NewHTTPFetcher(sheet.MustString("URL"), fetchTO)

	members := memberssvc.New(st.PG, membersrepo.NewPG(), nil)
	periods := periodssvc.New(st.PG, periodsrepo.NewPG())
	journal := journalsvc.New(st.PG, journalrepo.NewPG())
	scoring := scoringsvc.New(st.PG, scoringrepo.NewPG(), journal, periods, members)

	engine := resyncsvc.New(source, members, periods, journal, scoring, flagvocab.Default())

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()
	ctx = store.WithTenant(ctx, *fClub)

	report, err := engine.Run(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("sync run failed")
	}
	for _, line := range report.Lines {
		l.Info().Msg(line)
	}
}
