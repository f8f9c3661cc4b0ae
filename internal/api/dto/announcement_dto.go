package dto

import (
	"time"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// AnnouncementRequest payload for create/update.
type AnnouncementRequest struct {
	Message     string     `json:"message"`
	HTMLContent string     `json:"html_content"`
	Priority    int        `json:"priority"`
	Theme       string     `json:"theme"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// AnnouncementResponse is the public shape of an announcement.
type AnnouncementResponse struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	HTMLContent string     `json:"html_content"`
	Priority    int        `json:"priority"`
	Theme       string     `json:"theme"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewAnnouncementResponse converts a domain record.
func NewAnnouncementResponse(a domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Message:     a.Message,
		HTMLContent: a.HTMLContent,
		Priority:    a.Priority,
		Theme:       a.Theme,
		Active:      a.Active,
		ExpiresAt:   a.ExpiresAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
