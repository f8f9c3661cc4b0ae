package roster

import (
	"context"
	"time"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// Source is the remote source of truth for the roster. Implementations are
// expected to be safe for concurrent use.
type Source interface {
	// FetchRoster performs a full authoritative read.
	FetchRoster(ctx context.Context) ([]domain.TeamMember, error)
	// PersistCreate stores a new record. The record carries its id.
	PersistCreate(ctx context.Context, member domain.TeamMember) error
	// PersistPatch applies a single-field update plus the new last-updated
	// timestamp to an existing record.
	PersistPatch(ctx context.Context, id string, patch FieldPatch, updatedAt time.Time) error
	// PersistDelete removes a record permanently.
	PersistDelete(ctx context.Context, id string) error
}
