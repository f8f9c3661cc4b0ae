package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/repository"

	apperrors "github.com/spec-kit/team-pulse/pkg/util"
)

// AnnouncementService coordinates the admin-managed global banners.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
}

// AnnouncementInput describes create/update payloads.
type AnnouncementInput struct {
	Message     string
	HTMLContent string
	Priority    int
	Theme       string
	Active      bool
	ExpiresAt   *time.Time
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(announcements repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// Create stores a new announcement. At least one of message and HTML
// content must be present.
func (s *AnnouncementService) Create(ctx context.Context, input AnnouncementInput) (*domain.Announcement, error) {
	if err := validateAnnouncement(input); err != nil {
		return nil, err
	}

	announcement := &domain.Announcement{
		Message:     strings.TrimSpace(input.Message),
		HTMLContent: input.HTMLContent,
		Priority:    input.Priority,
		Theme:       input.Theme,
		Active:      input.Active,
		ExpiresAt:   input.ExpiresAt,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Update replaces all editable fields of an announcement.
func (s *AnnouncementService) Update(ctx context.Context, id string, input AnnouncementInput) (*domain.Announcement, error) {
	if err := validateAnnouncement(input); err != nil {
		return nil, err
	}

	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	announcement.Message = strings.TrimSpace(input.Message)
	announcement.HTMLContent = input.HTMLContent
	announcement.Priority = input.Priority
	announcement.Theme = input.Theme
	announcement.Active = input.Active
	announcement.ExpiresAt = input.ExpiresAt

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Toggle flips the active flag.
func (s *AnnouncementService) Toggle(ctx context.Context, id string) (*domain.Announcement, error) {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	announcement.Active = !announcement.Active
	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement permanently.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	return s.announcements.Delete(ctx, id)
}

// ListAll returns every announcement ordered by priority then recency.
func (s *AnnouncementService) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.List(ctx)
}

// ListVisible returns the announcements viewers should currently see:
// active, unexpired, priority order.
func (s *AnnouncementService) ListVisible(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	all, err := s.announcements.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Announcement, 0, len(all))
	for _, announcement := range all {
		if announcement.ActiveAt(now) {
			visible = append(visible, announcement)
		}
	}
	return visible, nil
}

func validateAnnouncement(input AnnouncementInput) error {
	if strings.TrimSpace(input.Message) == "" && strings.TrimSpace(input.HTMLContent) == "" {
		return apperrors.NewValidationError("announcement requires a message or html content", nil)
	}
	return nil
}
