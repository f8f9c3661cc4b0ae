package domain

import "time"

// Announcement is a global banner managed by administrators.
type Announcement struct {
	ID          string
	Message     string
	HTMLContent string
	Priority    int
	Theme       string
	Active      bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActiveAt reports whether the announcement should be shown at t.
func (a Announcement) ActiveAt(t time.Time) bool {
	if !a.Active {
		return false
	}
	if a.ExpiresAt != nil && !a.ExpiresAt.After(t) {
		return false
	}
	return true
}
