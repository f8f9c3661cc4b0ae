package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/roster"
)

// MemberRepository is the source of truth behind the in-memory roster
// snapshot. It satisfies roster.Source.
type MemberRepository interface {
	roster.Source
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

const memberColumns = `
        m.id, m.user_id, u.role, m.name, m.position, m.status, m.projects,
        m.customization, m.vacation_start, m.vacation_end, m.is_on_vacation, m.last_updated`

func (r *memberRepository) FetchRoster(ctx context.Context) ([]domain.TeamMember, error) {
	const query = `
        SELECT` + memberColumns + `
        FROM team_members m
        JOIN users u ON u.id = m.user_id
        ORDER BY m.last_updated DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	const query = `
        SELECT` + memberColumns + `
        FROM team_members m
        JOIN users u ON u.id = m.user_id
        WHERE m.id=$1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	member, err := scanMember(rows)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) PersistCreate(ctx context.Context, member domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (id, user_id, name, position, status, projects, customization,
                                  vacation_start, vacation_end, is_on_vacation, last_updated)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	customization, err := encodeCustomization(member.Customization)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		member.ID,
		member.OwnerID,
		member.Name,
		member.Position,
		member.Status,
		member.Projects,
		customization,
		member.VacationStart,
		member.VacationEnd,
		member.IsOnVacation,
		member.LastUpdated,
	)
	return err
}

func (r *memberRepository) PersistPatch(ctx context.Context, id string, patch roster.FieldPatch, updatedAt time.Time) error {
	columns := patch.Columns()

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names)+2)
	for _, name := range names {
		value, err := encodeColumn(columns[name])
		if err != nil {
			return err
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s=$%d", name, len(args)))
	}
	args = append(args, updatedAt)
	assignments = append(assignments, fmt.Sprintf("last_updated=$%d", len(args)))
	args = append(args, id)

	query := fmt.Sprintf("UPDATE team_members SET %s WHERE id=$%d",
		strings.Join(assignments, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) PersistDelete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanMember(rows pgx.Rows) (domain.TeamMember, error) {
	var member domain.TeamMember
	var customization []byte
	if err := rows.Scan(
		&member.ID,
		&member.OwnerID,
		&member.Role,
		&member.Name,
		&member.Position,
		&member.Status,
		&member.Projects,
		&customization,
		&member.VacationStart,
		&member.VacationEnd,
		&member.IsOnVacation,
		&member.LastUpdated,
	); err != nil {
		return domain.TeamMember{}, err
	}
	if len(customization) > 0 {
		var parsed domain.Customization
		if err := json.Unmarshal(customization, &parsed); err != nil {
			return domain.TeamMember{}, fmt.Errorf("decode customization for %s: %w", member.ID, err)
		}
		member.Customization = &parsed
	}
	if member.Projects == nil {
		member.Projects = []string{}
	}
	return member, nil
}

// encodeColumn prepares a patch value for pgx; customization objects are
// stored as JSONB.
func encodeColumn(value any) (any, error) {
	if customization, ok := value.(*domain.Customization); ok {
		return encodeCustomization(customization)
	}
	return value, nil
}

func encodeCustomization(customization *domain.Customization) (any, error) {
	if customization == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(customization)
	if err != nil {
		return nil, fmt.Errorf("encode customization: %w", err)
	}
	return encoded, nil
}
