package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/notify"
	"github.com/spec-kit/team-pulse/internal/observability"
)

func newTestSyncer(t *testing.T, source *fakeSource, notifier notify.Notifier) (*Syncer, *Store) {
	t.Helper()
	store := NewStore()
	return NewSyncer(store, source, notifier, zap.NewNop(), observability.NewMetrics(), time.Second), store
}

func TestResyncReplacesSnapshot(t *testing.T) {
	source := &fakeSource{records: []domain.TeamMember{member("m1", "u1", "Ana")}}
	syncer, store := newTestSyncer(t, source, notify.NewInMemoryNotifier())

	require.NoError(t, syncer.Resync(context.Background()))
	require.Equal(t, 1, store.Len())
}

func TestResyncFailureKeepsLastKnownState(t *testing.T) {
	source := &fakeSource{records: []domain.TeamMember{member("m1", "u1", "Ana")}}
	syncer, store := newTestSyncer(t, source, notify.NewInMemoryNotifier())
	require.NoError(t, syncer.Resync(context.Background()))

	source.fetchErr = errors.New("connection reset")
	err := syncer.Resync(context.Background())
	require.Equal(t, "FETCH_FAILURE", errCode(t, err))

	// last-known roster survives the failed fetch
	require.Equal(t, 1, store.Len())
	current, ok := store.Lookup("m1")
	require.True(t, ok)
	require.Equal(t, "Ana", current.Name)
}

func TestRunResyncsOnChangeTick(t *testing.T) {
	source := &fakeSource{records: []domain.TeamMember{member("m1", "u1", "Ana")}}
	notifier := notify.NewInMemoryNotifier()
	syncer, store := newTestSyncer(t, source, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go syncer.Run(ctx) //nolint:errcheck

	require.Eventually(t, func() bool {
		return store.Len() == 1
	}, time.Second, 5*time.Millisecond)

	// another client adds a record and publishes a tick
	source.mu.Lock()
	source.records = append(source.records, member("m2", "u2", "Bea"))
	source.mu.Unlock()
	require.NoError(t, notifier.Publish(context.Background()))

	require.Eventually(t, func() bool {
		return store.Len() == 2
	}, time.Second, 5*time.Millisecond)
}
