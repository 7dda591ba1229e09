// Package modkit assembles modules from shared dependencies and options
package modkit

import (
	"readathon/internal/modkit/repokit"
	"readathon/internal/platform/config"
	"readathon/internal/platform/logger"
)

// Deps is the bundle the composition root hands to every module it
// mounts. Wiring only, no behavior of its own
type Deps struct {
	Cfg config.Conf
	Log logger.Logger
	PG  repokit.TxRunner
}
