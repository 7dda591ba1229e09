package repokit

import (
	"context"
	"fmt"
)

// MustGuard pings every store backend and panics when one is down.
// Both binaries run it straight after opening the store so nothing
// serves traffic against a dead database
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
