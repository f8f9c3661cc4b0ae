// Package view computes presentational projections of the roster. Every
// function is pure: it reads a snapshot and returns a fresh result, so the
// projections always reflect the current store plus the caller's filter
// and sort state.
package view

import (
	"sort"
	"strings"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// SortKey selects the member ordering.
type SortKey string

const (
	SortByLastUpdated  SortKey = "last_updated"
	SortByName         SortKey = "name"
	SortByCapacity     SortKey = "capacity"
	SortByAvailability SortKey = "availability"
)

// Direction orders ascending or descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState tracks the active key and direction for a roster listing.
type SortState struct {
	Key SortKey
	Dir Direction
}

// Toggle selects a key: re-selecting the active key flips the direction,
// switching keys resets to ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		if s.Dir == Ascending {
			return SortState{Key: key, Dir: Descending}
		}
		return SortState{Key: key, Dir: Ascending}
	}
	return SortState{Key: key, Dir: Ascending}
}

// positionRank orders seniority levels for capacity sorting.
var positionRank = map[domain.Position]int{
	domain.PositionAssistant:         1,
	domain.PositionAssociate:         2,
	domain.PositionSeniorAssociate:   3,
	domain.PositionManagingAssociate: 4,
	domain.PositionCounsel:           5,
	domain.PositionPartner:           6,
}

// availabilityRank orders statuses from most to least available.
var availabilityRank = map[domain.Status]int{
	domain.StatusAvailable:        1,
	domain.StatusSomeAvailability: 2,
	domain.StatusBusy:             3,
	domain.StatusSeriouslyBusy:    4,
	domain.StatusAway:             5,
	domain.StatusVacation:         6,
}

// Search returns the members matching a case-insensitive substring query
// against any string-valued field: name, position, status and each project
// name. An empty query matches everything.
func Search(members []domain.TeamMember, query string) []domain.TeamMember {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return members
	}

	matched := make([]domain.TeamMember, 0, len(members))
	for _, m := range members {
		if matchesQuery(m, query) {
			matched = append(matched, m)
		}
	}
	return matched
}

func matchesQuery(m domain.TeamMember, query string) bool {
	if strings.Contains(strings.ToLower(m.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(m.Position)), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(m.Status)), query) {
		return true
	}
	for _, project := range m.Projects {
		if strings.Contains(strings.ToLower(project), query) {
			return true
		}
	}
	return false
}

// SortMembers returns a stably sorted copy of the members.
func SortMembers(members []domain.TeamMember, state SortState) []domain.TeamMember {
	out := append([]domain.TeamMember(nil), members...)

	less := lessFunc(state.Key)
	sort.SliceStable(out, func(i, j int) bool {
		if state.Dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b domain.TeamMember) bool {
	switch key {
	case SortByName:
		return func(a, b domain.TeamMember) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByCapacity:
		return func(a, b domain.TeamMember) bool {
			return positionRank[a.Position] < positionRank[b.Position]
		}
	case SortByAvailability:
		return func(a, b domain.TeamMember) bool {
			return availabilityRank[a.Status] < availabilityRank[b.Status]
		}
	default:
		return func(a, b domain.TeamMember) bool {
			return a.LastUpdated.Before(b.LastUpdated)
		}
	}
}
