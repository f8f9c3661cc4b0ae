package view

import (
	"sort"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// WorkloadCategory buckets a project's staffing pressure.
type WorkloadCategory string

const (
	CategorySeverelyOverloaded WorkloadCategory = "severely_overloaded"
	CategoryHighWorkload       WorkloadCategory = "high_workload"
	CategoryBalancedWorkload   WorkloadCategory = "balanced_workload"
	CategoryLowWorkload        WorkloadCategory = "low_workload"
	CategoryInactive           WorkloadCategory = "inactive"
)

// categorySeverity orders buckets from most to least overloaded, with
// inactive projects trailing.
var categorySeverity = map[WorkloadCategory]int{
	CategorySeverelyOverloaded: 1,
	CategoryHighWorkload:       2,
	CategoryBalancedWorkload:   3,
	CategoryLowWorkload:        4,
	CategoryInactive:           5,
}

// statusPoints maps availability to workload score contribution. Away and
// vacationing members contribute nothing and do not count as active.
var statusPoints = map[domain.Status]float64{
	domain.StatusAvailable:        3,
	domain.StatusSomeAvailability: 2,
	domain.StatusBusy:             1,
	domain.StatusSeriouslyBusy:    0,
}

// ProjectGroup collects the members assigned to one project.
type ProjectGroup struct {
	Project string
	Members []domain.TeamMember
}

// ProjectWorkload scores one project's staffing pressure.
type ProjectWorkload struct {
	Project       string
	Score         float64
	Category      WorkloadCategory
	ActiveMembers int
	Members       []domain.TeamMember
}

// GroupByProject collects members per distinct project name, sorted by
// project name for deterministic output.
func GroupByProject(members []domain.TeamMember) []ProjectGroup {
	byProject := make(map[string][]domain.TeamMember)
	for _, m := range members {
		for _, project := range m.Projects {
			byProject[project] = append(byProject[project], m)
		}
	}

	groups := make([]ProjectGroup, 0, len(byProject))
	for project, assigned := range byProject {
		groups = append(groups, ProjectGroup{Project: project, Members: assigned})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Project < groups[j].Project
	})
	return groups
}

// ProjectWorkloads scores every project and orders the result by bucket
// severity, then ascending score within a bucket so the most overloaded
// projects come first.
func ProjectWorkloads(members []domain.TeamMember) []ProjectWorkload {
	groups := GroupByProject(members)

	workloads := make([]ProjectWorkload, 0, len(groups))
	for _, group := range groups {
		workloads = append(workloads, scoreProject(group))
	}
	sort.SliceStable(workloads, func(i, j int) bool {
		a, b := workloads[i], workloads[j]
		if categorySeverity[a.Category] != categorySeverity[b.Category] {
			return categorySeverity[a.Category] < categorySeverity[b.Category]
		}
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.Project < b.Project
	})
	return workloads
}

func scoreProject(group ProjectGroup) ProjectWorkload {
	var total float64
	var active int
	for _, m := range group.Members {
		points, counted := statusPoints[m.Status]
		if !counted {
			continue
		}
		total += points
		active++
	}

	workload := ProjectWorkload{
		Project:       group.Project,
		ActiveMembers: active,
		Members:       group.Members,
	}
	if active == 0 {
		workload.Category = CategoryInactive
		return workload
	}

	workload.Score = total / float64(active)
	workload.Category = categorize(workload.Score)
	return workload
}

// categorize buckets an average score. Boundaries are exclusive on the
// upper end: an average of exactly 2.0 is balanced, not high workload.
func categorize(score float64) WorkloadCategory {
	switch {
	case score < 1.0:
		return CategorySeverelyOverloaded
	case score < 2.0:
		return CategoryHighWorkload
	case score < 2.7:
		return CategoryBalancedWorkload
	default:
		return CategoryLowWorkload
	}
}
