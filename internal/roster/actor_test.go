package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		ownerID  string
		expected bool
	}{
		{
			name:     "owner may mutate own record",
			actor:    Actor{ID: "u1"},
			ownerID:  "u1",
			expected: true,
		},
		{
			name:     "non-owner may not mutate",
			actor:    Actor{ID: "u2"},
			ownerID:  "u1",
			expected: false,
		},
		{
			name:     "admin may mutate anyone",
			actor:    Actor{ID: "u2", IsAdmin: true},
			ownerID:  "u1",
			expected: true,
		},
		{
			name:     "admin may mutate own record",
			actor:    Actor{ID: "u1", IsAdmin: true},
			ownerID:  "u1",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := domain.TeamMember{ID: "m1", OwnerID: tt.ownerID}
			require.Equal(t, tt.expected, CanMutate(tt.actor, record))
		})
	}
}
