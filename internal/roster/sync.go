package roster

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/team-pulse/internal/notify"
	"github.com/spec-kit/team-pulse/internal/observability"

	apperrors "github.com/spec-kit/team-pulse/pkg/util"
)

// DefaultLoadTimeout bounds a single roster fetch so a stuck source of
// truth cannot wedge the loading state forever.
const DefaultLoadTimeout = 15 * time.Second

// Syncer keeps the local store aligned with the source of truth. It is the
// only component that replaces the store wholesale.
type Syncer struct {
	store    *Store
	source   Source
	notifier notify.Notifier
	logger   *zap.Logger
	metrics  *observability.Metrics
	timeout  time.Duration
}

// NewSyncer constructs a syncer. A zero timeout selects DefaultLoadTimeout.
func NewSyncer(store *Store, source Source, notifier notify.Notifier, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) *Syncer {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Syncer{
		store:    store,
		source:   source,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		timeout:  timeout,
	}
}

// Resync re-fetches the authoritative roster and replaces the store. On
// fetch failure the store keeps its last-known state and a FETCH_FAILURE
// error is returned.
func (s *Syncer) Resync(ctx context.Context) error {
	members, err := s.source.FetchRoster(ctx)
	if err != nil {
		s.metrics.RecordResync(false)
		return apperrors.NewFetchFailure(err)
	}
	s.store.ReplaceAll(members)
	s.metrics.RecordResync(true)
	return nil
}

// Run performs the initial load, then resyncs on every change tick until
// the context is cancelled. Ticks arriving during a resync coalesce into a
// single follow-up refresh.
func (s *Syncer) Run(ctx context.Context) error {
	if err := s.resyncBounded(ctx); err != nil {
		s.logger.Warn("initial roster load failed", zap.Error(err))
	}

	kick := make(chan struct{}, 1)
	unsubscribe := s.notifier.Subscribe(func() {
		select {
		case kick <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-kick:
			if err := s.resyncBounded(ctx); err != nil {
				s.logger.Warn("resync failed, keeping last known roster", zap.Error(err))
			}
		}
	}
}

func (s *Syncer) resyncBounded(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.Resync(ctx)
}
