package domain

import "time"

// Position enumerates seniority levels shown on member cards.
type Position string

const (
	PositionAssistant         Position = "ASSISTANT"
	PositionAssociate         Position = "ASSOCIATE"
	PositionSeniorAssociate   Position = "SENIOR_ASSOCIATE"
	PositionManagingAssociate Position = "MANAGING_ASSOCIATE"
	PositionCounsel           Position = "COUNSEL"
	PositionPartner           Position = "PARTNER"
)

// Status enumerates availability states for a member.
type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusSomeAvailability Status = "SOME_AVAILABILITY"
	StatusBusy             Status = "BUSY"
	StatusSeriouslyBusy    Status = "SERIOUSLY_BUSY"
	StatusAway             Status = "AWAY"
	StatusVacation         Status = "VACATION"
)

// ValidStatus reports whether s is one of the fixed availability states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusSomeAvailability, StatusBusy, StatusSeriouslyBusy, StatusAway, StatusVacation:
		return true
	}
	return false
}

// ValidPosition reports whether p is one of the fixed seniority levels.
func ValidPosition(p Position) bool {
	switch p {
	case PositionAssistant, PositionAssociate, PositionSeniorAssociate, PositionManagingAssociate, PositionCounsel, PositionPartner:
		return true
	}
	return false
}

// Customization holds cosmetic card overrides. Absence means default
// styling derived from status.
type Customization struct {
	Color    *string `json:"color,omitempty"`
	Gradient *string `json:"gradient,omitempty"`
	Emoji    *string `json:"emoji,omitempty"`
	BadgeURL *string `json:"badge_url,omitempty"`
	Animated bool    `json:"animated,omitempty"`
}

// TeamMember is the roster record published by each account.
// Role mirrors the owning account's role as read from the store; it is
// never written through member mutations.
type TeamMember struct {
	ID            string
	OwnerID       string
	Role          Role
	Name          string
	Position      Position
	Status        Status
	Projects      []string
	Customization *Customization
	VacationStart *time.Time
	VacationEnd   *time.Time
	IsOnVacation  bool
	LastUpdated   time.Time
}

// Clone returns a copy of the member safe to mutate independently.
// Projects is copied; Customization is reused, since patches replace the
// whole object rather than editing it in place.
func (m TeamMember) Clone() TeamMember {
	out := m
	if m.Projects != nil {
		out.Projects = append([]string(nil), m.Projects...)
	}
	return out
}
