// internal/repository/postgres/social_link_repo.go
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

type SocialLinkRepository struct {
	db *pgxpool.Pool
}

func NewSocialLinkRepository(db *pgxpool.Pool) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

func (r *SocialLinkRepository) ListByProfile(ctx context.Context, profileID string) ([]portfolio.SocialLink, error) {
	query := `
		SELECT id, profile_id, platform, url
		FROM social_links
		WHERE profile_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer rows.Close()

	links := []portfolio.SocialLink{}
	for rows.Next() {
		var l portfolio.SocialLink
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.Platform, &l.URL); err != nil {
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

func (r *SocialLinkRepository) FindByID(ctx context.Context, id int64) (*portfolio.SocialLink, error) {
	query := `
		SELECT id, profile_id, platform, url
		FROM social_links
		WHERE id = $1
	`

	var l portfolio.SocialLink
	err := r.db.QueryRow(ctx, query, id).Scan(&l.ID, &l.ProfileID, &l.Platform, &l.URL)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find social link: %w", err)
	}

	return &l, nil
}

func (r *SocialLinkRepository) Create(ctx context.Context, l *portfolio.SocialLink) error {
	query := `
		INSERT INTO social_links (profile_id, platform, url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, l.ProfileID, l.Platform, l.URL).Scan(&l.ID); err != nil {
		return fmt.Errorf("failed to create social link: %w", err)
	}

	return nil
}

func (r *SocialLinkRepository) Update(ctx context.Context, l *portfolio.SocialLink) error {
	query := `UPDATE social_links SET platform = $2, url = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, l.ID, l.Platform, l.URL)
	if err != nil {
		return fmt.Errorf("failed to update social link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *SocialLinkRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete social link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
