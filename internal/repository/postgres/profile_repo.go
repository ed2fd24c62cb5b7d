// internal/repository/postgres/profile_repo.go
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

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByID retrieves a profile by subject identifier.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*portfolio.Profile, error) {
	query := `
		SELECT id, first_name, last_name, email, avatar_url, phone, created_at
		FROM profiles
		WHERE id = $1
	`

	var p portfolio.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.AvatarURL, &p.Phone, &p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &p, nil
}

// CreateIfAbsent inserts the profile unless the subject already has one.
// A lost insert race falls through to the point lookup, so both racers
// return the same stored row.
func (r *ProfileRepository) CreateIfAbsent(ctx context.Context, p *portfolio.Profile) (*portfolio.Profile, bool, error) {
	query := `
		INSERT INTO profiles (id, first_name, last_name, email, avatar_url, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, first_name, last_name, email, avatar_url, phone, created_at
	`

	var created portfolio.Profile
	err := r.db.QueryRow(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.AvatarURL, p.Phone,
	).Scan(
		&created.ID, &created.FirstName, &created.LastName,
		&created.Email, &created.AvatarURL, &created.Phone, &created.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		existing, ferr := r.FindByID(ctx, p.ID)
		if ferr != nil {
			return nil, false, fmt.Errorf("failed to load existing profile: %w", ferr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create profile: %w", err)
	}

	return &created, true, nil
}

// Update replaces the mutable profile fields.
func (r *ProfileRepository) Update(ctx context.Context, p *portfolio.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $2, last_name = $3, email = $4, avatar_url = $5, phone = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.AvatarURL, p.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// UpdateAvatar sets only the avatar URL.
func (r *ProfileRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, avatarURL)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
