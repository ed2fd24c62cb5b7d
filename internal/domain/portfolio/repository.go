// internal/domain/portfolio/repository.go
package portfolio

import "context"

// ProfileRepository persists profiles keyed by subject identifier.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*Profile, error)

	// CreateIfAbsent atomically inserts the profile unless a row with the
	// same id already exists, in which case the existing row is returned.
	// The bool reports whether a new row was created. Two concurrent
	// first-calls for the same id both converge on the single stored row.
	CreateIfAbsent(ctx context.Context, p *Profile) (*Profile, bool, error)

	Update(ctx context.Context, p *Profile) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
}

type JobRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Job, error)
	FindByID(ctx context.Context, id int64) (*Job, error)
	Create(ctx context.Context, j *Job) error
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Service, error)
	FindByID(ctx context.Context, id int64) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int64) error
}

type SocialLinkRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]SocialLink, error)
	FindByID(ctx context.Context, id int64) (*SocialLink, error)
	Create(ctx context.Context, l *SocialLink) error
	Update(ctx context.Context, l *SocialLink) error
	Delete(ctx context.Context, id int64) error
}
