// Package api is the composition root for the HTTP surface
package api

import (
	"context"
	"time"

	"readathon/internal/platform/config"
	"readathon/internal/platform/logger"
	phttp "readathon/internal/platform/net/http"
	"readathon/internal/platform/store"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	"readathon/internal/modkit/module"
	"readathon/internal/modkit/repokit"
	"readathon/internal/modkit/scope"
	"readathon/internal/modkit/swaggerkit"

	metamod "readathon/internal/services/api/meta/module"
	journalmod "readathon/internal/services/journal/module"
	membersmod "readathon/internal/services/members/module"
	periodsmod "readathon/internal/services/periods/module"
	resyncmod "readathon/internal/services/resync/module"
	scoringmod "readathon/internal/services/scoring/module"
)

// Options selects what Mount wires up
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	EnableSwagger  bool
	EnableProfiler bool
}

// tagClubSession stamps the club id on the database session at tx begin so
// server-side audit triggers can attribute writes
func tagClubSession(ctx context.Context, q repokit.Queryer) error {
	id, ok := scope.Get(ctx, "club_id")
	if !ok {
		if t, tok := store.TenantID(ctx); tok {
			id = t
		} else {
			return nil
		}
	}
	_, err := q.Exec(ctx, `select set_config('app.club_id', $1, true)`, id)
	return err
}

// Mount assembles every module and hangs the API off r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  repokit.WithBeginHooks(opt.Store.PG, tagClubSession),
	}

	sheet := opt.Config.Prefix("SYNC_SHEET_")
	timeout := time.Duration(sheet.MayInt("TIMEOUT_SECONDS", 30)) * time.Second
	source := sheetrow.NewHTTPFetcher(sheet.MustString("URL"), timeout)

	// the choice-list webhook is optional; without it enrollment still works,
	// the form just is not updated
	var pusher sheetrow.NamePusher
	if url := sheet.MayString("PUSH_URL", ""); url != "" {
		pusher = sheetrow.NewWebhookPusher(url, sheet.MayString("PUSH_TOKEN", ""), timeout)
	}

	// every club-scoped module carries the tenant header middleware; meta stays open
	clubScoped := modkit.WithMiddlewares(httpkit.RequireClub(phttp.JSON))

	journal := journalmod.New(deps)
	journalPorts := module.MustPortsOf[journalmod.Ports](journal)

	members := membersmod.New(deps, pusher, clubScoped)
	membersPorts := module.MustPortsOf[membersmod.Ports](members)

	periods := periodsmod.New(deps, clubScoped)
	periodsPorts := module.MustPortsOf[periodsmod.Ports](periods)

	scoring := scoringmod.New(deps, journalPorts.Query, periodsPorts.Query, membersPorts.Query, clubScoped)
	scoringPorts := module.MustPortsOf[scoringmod.Ports](scoring)

	resync := resyncmod.New(
		deps, source,
		membersPorts.Query, periodsPorts.Query,
		journalPorts.Writer, scoringPorts.Recompute,
		clubScoped,
	)

	mods := []module.Module{
		// meta gets the bare store seam so its readiness check can reach Ping
		metamod.New(modkit.Deps{Cfg: opt.Config, PG: opt.Store.PG}),
		journal,
		members,
		periods,
		scoring,
		resync,
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
