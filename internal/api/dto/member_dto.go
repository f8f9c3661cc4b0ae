package dto

import (
	"time"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// MemberResponse mirrors the roster record's wire contract.
type MemberResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	Role          string                `json:"role"`
	Name          string                `json:"name"`
	Position      string                `json:"position"`
	Status        string                `json:"status"`
	Projects      []string              `json:"projects"`
	Customization *domain.Customization `json:"customization,omitempty"`
	VacationStart *time.Time            `json:"vacation_start,omitempty"`
	VacationEnd   *time.Time            `json:"vacation_end,omitempty"`
	IsOnVacation  bool                  `json:"is_on_vacation"`
	LastUpdated   time.Time             `json:"last_updated"`
}

// NewMemberResponse converts a domain record.
func NewMemberResponse(m domain.TeamMember) MemberResponse {
	projects := m.Projects
	if projects == nil {
		projects = []string{}
	}
	return MemberResponse{
		ID:            m.ID,
		UserID:        m.OwnerID,
		Role:          string(m.Role),
		Name:          m.Name,
		Position:      string(m.Position),
		Status:        string(m.Status),
		Projects:      projects,
		Customization: m.Customization,
		VacationStart: m.VacationStart,
		VacationEnd:   m.VacationEnd,
		IsOnVacation:  m.IsOnVacation,
		LastUpdated:   m.LastUpdated,
	}
}

// MemberCreateRequest payload for new roster records.
type MemberCreateRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// MemberPatchRequest carries exactly one field update. Field selects the
// variant; the matching value field supplies the payload.
type MemberPatchRequest struct {
	Field string `json:"field"`

	Name          *string               `json:"name,omitempty"`
	Position      *string               `json:"position,omitempty"`
	Status        *string               `json:"status,omitempty"`
	Projects      *string               `json:"projects,omitempty"`
	Customization *domain.Customization `json:"customization,omitempty"`
	VacationStart *time.Time            `json:"vacation_start,omitempty"`
	VacationEnd   *time.Time            `json:"vacation_end,omitempty"`
	IsOnVacation  *bool                 `json:"is_on_vacation,omitempty"`
}
