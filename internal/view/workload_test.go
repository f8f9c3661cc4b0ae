package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

func TestGroupByProject(t *testing.T) {
	members := []domain.TeamMember{
		member("Ana", domain.PositionPartner, domain.StatusBusy, "Beacon", "Atlas"),
		member("Bea", domain.PositionCounsel, domain.StatusAvailable, "Atlas"),
		member("Cal", domain.PositionAssociate, domain.StatusAway),
	}

	groups := GroupByProject(members)
	require.Len(t, groups, 2)

	require.Equal(t, "Atlas", groups[0].Project)
	require.Len(t, groups[0].Members, 2)
	require.Equal(t, "Beacon", groups[1].Project)
	require.Len(t, groups[1].Members, 1)
}

func TestScoreProjectCategories(t *testing.T) {
	tests := []struct {
		name     string
		statuses []domain.Status
		score    float64
		active   int
		category WorkloadCategory
	}{
		{
			name:     "all seriously busy is severely overloaded",
			statuses: []domain.Status{domain.StatusSeriouslyBusy, domain.StatusSeriouslyBusy},
			score:    0,
			active:   2,
			category: CategorySeverelyOverloaded,
		},
		{
			name:     "busy and seriously busy is high workload",
			statuses: []domain.Status{domain.StatusBusy, domain.StatusSeriouslyBusy},
			score:    0.5,
			active:   2,
			category: CategoryHighWorkload,
		},
		{
			name:     "average of exactly two is balanced",
			statuses: []domain.Status{domain.StatusAvailable, domain.StatusBusy},
			score:    2,
			active:   2,
			category: CategoryBalancedWorkload,
		},
		{
			name:     "all available is low workload",
			statuses: []domain.Status{domain.StatusAvailable, domain.StatusAvailable},
			score:    3,
			active:   2,
			category: CategoryLowWorkload,
		},
		{
			name:     "away members are excluded from the average",
			statuses: []domain.Status{domain.StatusAvailable, domain.StatusAway, domain.StatusVacation},
			score:    3,
			active:   1,
			category: CategoryLowWorkload,
		},
		{
			name:     "all away is inactive",
			statuses: []domain.Status{domain.StatusAway, domain.StatusVacation},
			score:    0,
			active:   0,
			category: CategoryInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := ProjectGroup{Project: "Atlas"}
			for i, status := range tt.statuses {
				m := member("M", domain.PositionAssociate, status, "Atlas")
				m.ID = m.ID + string(rune('a'+i))
				group.Members = append(group.Members, m)
			}

			workload := scoreProject(group)
			require.InDelta(t, tt.score, workload.Score, 1e-9)
			require.Equal(t, tt.active, workload.ActiveMembers)
			require.Equal(t, tt.category, workload.Category)
		})
	}
}

func TestProjectWorkloadsOrdering(t *testing.T) {
	members := []domain.TeamMember{
		// Calm: two available, low workload.
		member("Ana", domain.PositionPartner, domain.StatusAvailable, "Calm"),
		member("Bea", domain.PositionCounsel, domain.StatusAvailable, "Calm"),
		// Crunch: everyone seriously busy.
		member("Cal", domain.PositionAssociate, domain.StatusSeriouslyBusy, "Crunch"),
		// Dormant: nobody active.
		member("Dot", domain.PositionAssistant, domain.StatusAway, "Dormant"),
		// Steady: balanced.
		member("Eve", domain.PositionAssociate, domain.StatusSomeAvailability, "Steady"),
	}

	workloads := ProjectWorkloads(members)
	require.Len(t, workloads, 4)

	names := make([]string, 0, len(workloads))
	for _, w := range workloads {
		names = append(names, w.Project)
	}
	require.Equal(t, []string{"Crunch", "Steady", "Calm", "Dormant"}, names)
}
