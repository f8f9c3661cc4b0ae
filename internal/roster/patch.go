package roster

import (
	"strings"
	"time"

	"github.com/spec-kit/team-pulse/internal/domain"

	apperrors "github.com/spec-kit/team-pulse/pkg/util"
)

// FieldPatch is a closed union over the mutable fields of a TeamMember.
// Each variant knows how to validate itself, apply itself to a record and
// describe itself as column updates for the source of truth.
type FieldPatch interface {
	// Field names the mutated field for logs and error details.
	Field() string
	// Validate rejects values outside the field's domain.
	Validate() error
	// Apply writes the value onto the record.
	Apply(member *domain.TeamMember)
	// Columns maps source-of-truth column names to their new values.
	Columns() map[string]any
}

// NamePatch replaces the display name.
type NamePatch struct {
	Name string
}

func (p NamePatch) Field() string { return "name" }

func (p NamePatch) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("name must not be empty", nil)
	}
	return nil
}

func (p NamePatch) Apply(member *domain.TeamMember) {
	member.Name = strings.TrimSpace(p.Name)
}

func (p NamePatch) Columns() map[string]any {
	return map[string]any{"name": strings.TrimSpace(p.Name)}
}

// PositionPatch replaces the seniority level.
type PositionPatch struct {
	Position domain.Position
}

func (p PositionPatch) Field() string { return "position" }

func (p PositionPatch) Validate() error {
	if !domain.ValidPosition(p.Position) {
		return apperrors.NewValidationError("unknown position", map[string]any{"position": p.Position})
	}
	return nil
}

func (p PositionPatch) Apply(member *domain.TeamMember) {
	member.Position = p.Position
}

func (p PositionPatch) Columns() map[string]any {
	return map[string]any{"position": p.Position}
}

// StatusPatch replaces the availability status.
type StatusPatch struct {
	Status domain.Status
}

func (p StatusPatch) Field() string { return "status" }

func (p StatusPatch) Validate() error {
	if !domain.ValidStatus(p.Status) {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": p.Status})
	}
	return nil
}

func (p StatusPatch) Apply(member *domain.TeamMember) {
	member.Status = p.Status
}

func (p StatusPatch) Columns() map[string]any {
	return map[string]any{"status": p.Status}
}

// ProjectsPatch replaces the full project assignment list.
type ProjectsPatch struct {
	Projects []string
}

// ProjectsPatchFromString builds a ProjectsPatch from a delimited input
// string, splitting on commas and semicolons, trimming each token and
// dropping empties. The normalization is idempotent.
func ProjectsPatchFromString(raw string) ProjectsPatch {
	return ProjectsPatch{Projects: SplitProjects(raw)}
}

// SplitProjects tokenizes a free-text project list.
func SplitProjects(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	projects := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		projects = append(projects, token)
	}
	return projects
}

func (p ProjectsPatch) Field() string { return "projects" }

func (p ProjectsPatch) Validate() error { return nil }

func (p ProjectsPatch) Apply(member *domain.TeamMember) {
	member.Projects = append([]string(nil), p.Projects...)
}

func (p ProjectsPatch) Columns() map[string]any {
	return map[string]any{"projects": p.Projects}
}

// CustomizationPatch replaces the whole cosmetic override object. Callers
// supply the merged object, not a diff; nil clears the customization.
type CustomizationPatch struct {
	Customization *domain.Customization
}

func (p CustomizationPatch) Field() string { return "customization" }

func (p CustomizationPatch) Validate() error { return nil }

func (p CustomizationPatch) Apply(member *domain.TeamMember) {
	member.Customization = p.Customization
}

func (p CustomizationPatch) Columns() map[string]any {
	return map[string]any{"customization": p.Customization}
}

// VacationPatch replaces the vacation window. No start/end ordering is
// enforced; the window is display data.
type VacationPatch struct {
	Start      *time.Time
	End        *time.Time
	OnVacation bool
}

func (p VacationPatch) Field() string { return "vacation" }

func (p VacationPatch) Validate() error { return nil }

func (p VacationPatch) Apply(member *domain.TeamMember) {
	member.VacationStart = p.Start
	member.VacationEnd = p.End
	member.IsOnVacation = p.OnVacation
}

func (p VacationPatch) Columns() map[string]any {
	return map[string]any{
		"vacation_start": p.Start,
		"vacation_end":   p.End,
		"is_on_vacation": p.OnVacation,
	}
}
