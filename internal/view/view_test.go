package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

func member(name string, position domain.Position, status domain.Status, projects ...string) domain.TeamMember {
	return domain.TeamMember{
		ID:       "id-" + name,
		Name:     name,
		Position: position,
		Status:   status,
		Projects: projects,
	}
}

func TestSearchMatchesAnyStringField(t *testing.T) {
	members := []domain.TeamMember{
		member("Ana", domain.PositionPartner, domain.StatusBusy, "Project Alpha"),
		member("Bea", domain.PositionCounsel, domain.StatusAvailable, "Beacon"),
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "matches project even when name and position do not",
			query:    "alpha",
			expected: []string{"Ana"},
		},
		{
			name:     "matches name case-insensitively",
			query:    "BEA",
			expected: []string{"Bea"},
		},
		{
			name:     "matches position",
			query:    "counsel",
			expected: []string{"Bea"},
		},
		{
			name:     "matches status",
			query:    "busy",
			expected: []string{"Ana"},
		},
		{
			name:     "empty query matches everything",
			query:    "",
			expected: []string{"Ana", "Bea"},
		},
		{
			name:     "no match",
			query:    "zeta",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Search(members, tt.query)
			names := make([]string, 0, len(matched))
			for _, m := range matched {
				names = append(names, m.Name)
			}
			require.Equal(t, tt.expected, names)
		})
	}
}

func TestSortMembers(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	a := member("A", domain.PositionAssistant, domain.StatusBusy)
	a.LastUpdated = t1
	b := member("B", domain.PositionPartner, domain.StatusAvailable)
	b.LastUpdated = t2
	members := []domain.TeamMember{b, a}

	byName := SortMembers(members, SortState{Key: SortByName, Dir: Ascending})
	require.Equal(t, "A", byName[0].Name)
	require.Equal(t, "B", byName[1].Name)

	byUpdated := SortMembers(members, SortState{Key: SortByLastUpdated, Dir: Descending})
	require.Equal(t, "B", byUpdated[0].Name)
	require.Equal(t, "A", byUpdated[1].Name)

	byCapacity := SortMembers(members, SortState{Key: SortByCapacity, Dir: Ascending})
	require.Equal(t, "A", byCapacity[0].Name)

	byAvailability := SortMembers(members, SortState{Key: SortByAvailability, Dir: Ascending})
	require.Equal(t, "B", byAvailability[0].Name)

	// input order is untouched
	require.Equal(t, "B", members[0].Name)
}

func TestSortStateToggle(t *testing.T) {
	state := SortState{Key: SortByLastUpdated, Dir: Descending}

	state = state.Toggle(SortByName)
	require.Equal(t, SortState{Key: SortByName, Dir: Ascending}, state)

	state = state.Toggle(SortByName)
	require.Equal(t, SortState{Key: SortByName, Dir: Descending}, state)

	state = state.Toggle(SortByName)
	require.Equal(t, SortState{Key: SortByName, Dir: Ascending}, state)
}
