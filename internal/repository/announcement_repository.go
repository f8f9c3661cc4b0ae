package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/team-pulse/internal/domain"
)

// AnnouncementRepository manages persistence for global announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	Update(ctx context.Context, announcement *domain.Announcement) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository constructs repository.
func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (message, html_content, priority, theme, active, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		announcement.Message,
		announcement.HTMLContent,
		announcement.Priority,
		announcement.Theme,
		announcement.Active,
		announcement.ExpiresAt,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
}

func (r *announcementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        UPDATE announcements
        SET message=$1, html_content=$2, priority=$3, theme=$4, active=$5, expires_at=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		announcement.Message,
		announcement.HTMLContent,
		announcement.Priority,
		announcement.Theme,
		announcement.Active,
		announcement.ExpiresAt,
		announcement.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	const query = `
        SELECT id, message, html_content, priority, theme, active, expires_at, created_at, updated_at
        FROM announcements WHERE id=$1`

	var announcement domain.Announcement
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&announcement.ID,
		&announcement.Message,
		&announcement.HTMLContent,
		&announcement.Priority,
		&announcement.Theme,
		&announcement.Active,
		&announcement.ExpiresAt,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	const query = `
        SELECT id, message, html_content, priority, theme, active, expires_at, created_at, updated_at
        FROM announcements
        ORDER BY priority DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Announcement
	for rows.Next() {
		var announcement domain.Announcement
		if err := rows.Scan(
			&announcement.ID,
			&announcement.Message,
			&announcement.HTMLContent,
			&announcement.Priority,
			&announcement.Theme,
			&announcement.Active,
			&announcement.ExpiresAt,
			&announcement.CreatedAt,
			&announcement.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, announcement)
	}
	return result, rows.Err()
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
