// internal/repository/postgres/service_repo.go
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

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Service, error) {
	query := `
		SELECT id, profile_id, title, description, sort_order
		FROM services
		WHERE profile_id = $1
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []portfolio.Service{}
	for rows.Next() {
		var s portfolio.Service
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Title, &s.Description, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*portfolio.Service, error) {
	query := `
		SELECT id, profile_id, title, description, sort_order
		FROM services
		WHERE id = $1
	`

	var s portfolio.Service
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.ProfileID, &s.Title, &s.Description, &s.SortOrder)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *portfolio.Service) error {
	query := `
		INSERT INTO services (profile_id, title, description, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, s.ProfileID, s.Title, s.Description, s.SortOrder).Scan(&s.ID); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *portfolio.Service) error {
	query := `UPDATE services SET title = $2, description = $3, sort_order = $4 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, s.ID, s.Title, s.Description, s.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
