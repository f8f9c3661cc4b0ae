package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

func member(id, owner, name string) domain.TeamMember {
	return domain.TeamMember{
		ID:          id,
		OwnerID:     owner,
		Name:        name,
		Position:    domain.PositionAssociate,
		Status:      domain.StatusAvailable,
		Projects:    []string{},
		LastUpdated: time.Now(),
	}
}

func TestStoreReplaceAll(t *testing.T) {
	store := NewStore()
	store.Put(member("m1", "u1", "Old"))

	store.ReplaceAll([]domain.TeamMember{
		member("m2", "u2", "Bea"),
		member("m3", "u3", "Cal"),
	})

	require.Equal(t, 2, store.Len())
	_, ok := store.Lookup("m1")
	require.False(t, ok)

	snapshot := store.Snapshot()
	require.Equal(t, []string{"m2", "m3"}, []string{snapshot[0].ID, snapshot[1].ID})
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore()
	m := member("m1", "u1", "Ana")
	m.Projects = []string{"Atlas"}
	store.Put(m)

	snapshot := store.Snapshot()
	snapshot[0].Name = "changed"
	snapshot[0].Projects[0] = "changed"

	current, ok := store.Lookup("m1")
	require.True(t, ok)
	require.Equal(t, "Ana", current.Name)
	require.Equal(t, []string{"Atlas"}, current.Projects)
}

func TestStorePutPreservesOrder(t *testing.T) {
	store := NewStore()
	store.Put(member("m1", "u1", "Ana"))
	store.Put(member("m2", "u2", "Bea"))

	updated := member("m1", "u1", "Ana Updated")
	store.Put(updated)

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "m1", snapshot[0].ID)
	require.Equal(t, "Ana Updated", snapshot[0].Name)
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	store.Put(member("m1", "u1", "Ana"))
	store.Put(member("m2", "u2", "Bea"))

	store.Remove("m1")
	require.Equal(t, 1, store.Len())
	require.Equal(t, "m2", store.Snapshot()[0].ID)

	// absent id is a no-op
	store.Remove("m1")
	require.Equal(t, 1, store.Len())
}
