package worker

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/team-pulse/internal/roster"
)

// StartSyncWorker runs the roster syncer until the context is cancelled:
// one initial load, then a full resync on every change tick.
func StartSyncWorker(ctx context.Context, syncer *roster.Syncer, logger *zap.Logger) {
	if syncer == nil {
		return
	}
	go func() {
		if err := syncer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("sync worker stopped", zap.Error(err))
		}
	}()
}
