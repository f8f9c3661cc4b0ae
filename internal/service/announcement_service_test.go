package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/team-pulse/internal/domain"
)

type fakeAnnouncementRepo struct {
	nextID  int
	records map[string]domain.Announcement
	order   []string
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{records: make(map[string]domain.Announcement)}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, announcement *domain.Announcement) error {
	r.nextID++
	announcement.ID = fmt.Sprintf("ann-%d", r.nextID)
	announcement.CreatedAt = time.Now()
	announcement.UpdatedAt = announcement.CreatedAt
	r.records[announcement.ID] = *announcement
	r.order = append(r.order, announcement.ID)
	return nil
}

func (r *fakeAnnouncementRepo) Update(_ context.Context, announcement *domain.Announcement) error {
	if _, ok := r.records[announcement.ID]; !ok {
		return pgx.ErrNoRows
	}
	announcement.UpdatedAt = time.Now()
	r.records[announcement.ID] = *announcement
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(_ context.Context, id string) (*domain.Announcement, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &record, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context) ([]domain.Announcement, error) {
	result := make([]domain.Announcement, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.records[id])
	}
	return result, nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestAnnouncementCreateRequiresContent(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo())

	_, err := svc.Create(context.Background(), AnnouncementInput{Message: "   "})
	require.Error(t, err)

	announcement, err := svc.Create(context.Background(), AnnouncementInput{Message: "  maintenance tonight  ", Active: true})
	require.NoError(t, err)
	require.Equal(t, "maintenance tonight", announcement.Message)
	require.NotEmpty(t, announcement.ID)

	htmlOnly, err := svc.Create(context.Background(), AnnouncementInput{HTMLContent: "<b>hi</b>"})
	require.NoError(t, err)
	require.NotEmpty(t, htmlOnly.ID)
}

func TestAnnouncementUpdateReplacesFields(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)

	created, err := svc.Create(context.Background(), AnnouncementInput{Message: "v1", Priority: 1, Active: true})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, AnnouncementInput{Message: "v2", Priority: 5})
	require.NoError(t, err)
	require.Equal(t, "v2", updated.Message)
	require.Equal(t, 5, updated.Priority)
	require.False(t, updated.Active)

	_, err = svc.Update(context.Background(), "missing", AnnouncementInput{Message: "v3"})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestAnnouncementToggle(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)

	created, err := svc.Create(context.Background(), AnnouncementInput{Message: "banner", Active: true})
	require.NoError(t, err)

	toggled, err := svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	require.False(t, toggled.Active)

	toggled, err = svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, toggled.Active)
}

func TestAnnouncementListVisibleFiltersInactiveAndExpired(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := svc.Create(context.Background(), AnnouncementInput{Message: "live", Active: true})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), AnnouncementInput{Message: "live until tomorrow", Active: true, ExpiresAt: &future})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), AnnouncementInput{Message: "expired", Active: true, ExpiresAt: &past})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), AnnouncementInput{Message: "disabled", Active: false})
	require.NoError(t, err)

	visible, err := svc.ListVisible(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	require.Equal(t, "live", visible[0].Message)
	require.Equal(t, "live until tomorrow", visible[1].Message)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 4)
}
