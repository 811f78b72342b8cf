// Package sweep purges expired key-value entries in the background.
package sweep

import (
	"context"
	"time"

	"github.com/colonyops/campus/internal/core/kv"
	"github.com/colonyops/campus/internal/core/logging"
)

// Start periodically sweeps expired entries from store until ctx is
// cancelled. Backends that expire entries on their own are left alone and
// Start returns immediately.
func Start(ctx context.Context, store kv.KV, interval time.Duration) {
	sweeper, ok := store.(kv.Sweeper)
	if !ok {
		return
	}

	logger := logging.Component("sweep")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweeper.SweepExpired(ctx); err != nil {
				logger.Debug().Err(err).Msg("kv sweep failed")
			}
		}
	}
}
