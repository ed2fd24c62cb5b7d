// internal/repository/postgres/project_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Project, error) {
	query := `
		SELECT id, profile_id, title, description, project_link, sort_order
		FROM projects
		WHERE profile_id = $1
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []portfolio.Project{}
	for rows.Next() {
		var p portfolio.Project
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.ProjectLink, &p.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*portfolio.Project, error) {
	query := `
		SELECT id, profile_id, title, description, project_link, sort_order
		FROM projects
		WHERE id = $1
	`

	var p portfolio.Project
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.ProjectLink, &p.SortOrder)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *portfolio.Project) error {
	query := `
		INSERT INTO projects (profile_id, title, description, project_link, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, p.ProfileID, p.Title, p.Description, p.ProjectLink, p.SortOrder).Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *portfolio.Project) error {
	query := `UPDATE projects SET title = $2, description = $3, project_link = $4, sort_order = $5 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, p.ID, p.Title, p.Description, p.ProjectLink, p.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
