// internal/repository/postgres/job_repo.go
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

type JobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Job, error) {
	query := `
		SELECT id, profile_id, title, description
		FROM jobs
		WHERE profile_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []portfolio.Job{}
	for rows.Next() {
		var j portfolio.Job
		if err := rows.Scan(&j.ID, &j.ProfileID, &j.Title, &j.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*portfolio.Job, error) {
	query := `
		SELECT id, profile_id, title, description
		FROM jobs
		WHERE id = $1
	`

	var j portfolio.Job
	err := r.db.QueryRow(ctx, query, id).Scan(&j.ID, &j.ProfileID, &j.Title, &j.Description)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &j, nil
}

func (r *JobRepository) Create(ctx context.Context, j *portfolio.Job) error {
	query := `
		INSERT INTO jobs (profile_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, j.ProfileID, j.Title, j.Description).Scan(&j.ID); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (r *JobRepository) Update(ctx context.Context, j *portfolio.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, j.ID, j.Title, j.Description)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
