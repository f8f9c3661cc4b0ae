package roster

import "github.com/spec-kit/team-pulse/internal/domain"

// Actor identifies the caller attempting a roster operation. It is passed
// explicitly rather than read from ambient state so the core stays testable
// without the HTTP layer.
type Actor struct {
	ID      string
	IsAdmin bool
}

// CanMutate reports whether the actor may change the given record.
// Administrators may mutate anyone; everyone else only their own record.
func CanMutate(actor Actor, member domain.TeamMember) bool {
	return actor.IsAdmin || member.OwnerID == actor.ID
}
