package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

func TestSplitProjects(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "mixed delimiters with whitespace",
			input:    "A; B, C",
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "empty tokens dropped",
			input:    ",,Atlas;;  ;Beacon,",
			expected: []string{"Atlas", "Beacon"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single project keeps inner spaces",
			input:    "  Project Alpha  ",
			expected: []string{"Project Alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SplitProjects(tt.input))
		})
	}
}

func TestSplitProjectsIdempotent(t *testing.T) {
	first := SplitProjects("A; B, C")
	second := SplitProjects(strings.Join(first, ","))
	require.Equal(t, first, second)
}

func TestStatusPatchValidate(t *testing.T) {
	require.NoError(t, StatusPatch{Status: domain.StatusBusy}.Validate())
	require.Error(t, StatusPatch{Status: domain.Status("NAPPING")}.Validate())
}

func TestPositionPatchValidate(t *testing.T) {
	require.NoError(t, PositionPatch{Position: domain.PositionPartner}.Validate())
	require.Error(t, PositionPatch{Position: domain.Position("INTERN")}.Validate())
}

func TestNamePatchValidate(t *testing.T) {
	require.NoError(t, NamePatch{Name: "Ana"}.Validate())
	require.Error(t, NamePatch{Name: "   "}.Validate())
}

func TestVacationPatchApply(t *testing.T) {
	m := member("m1", "u1", "Ana")
	patch := VacationPatch{OnVacation: true}
	patch.Apply(&m)
	require.True(t, m.IsOnVacation)
	require.Nil(t, m.VacationStart)
	require.Nil(t, m.VacationEnd)
}

func TestCustomizationPatchReplacesWholeObject(t *testing.T) {
	color := "#ff0000"
	m := member("m1", "u1", "Ana")
	m.Customization = &domain.Customization{Emoji: ptr("🦊")}

	CustomizationPatch{Customization: &domain.Customization{Color: &color}}.Apply(&m)
	require.NotNil(t, m.Customization)
	require.Equal(t, &color, m.Customization.Color)
	require.Nil(t, m.Customization.Emoji)

	CustomizationPatch{}.Apply(&m)
	require.Nil(t, m.Customization)
}

func ptr(s string) *string {
	return &s
}
