// internal/domain/portfolio/entity.go
package portfolio

import "time"

// Profile is the durable per-subject record. ID is the provider-assigned
// subject identifier, immutable and unique; field casing on the wire
// follows the public API contract.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	FirstName string    `json:"FirstName" db:"first_name"`
	LastName  string    `json:"LastName" db:"last_name"`
	Email     string    `json:"email,omitempty" db:"email"`
	AvatarURL string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Child collections, populated on full reads only.
	Jobs        []Job        `json:"jobs,omitempty"`
	Services    []Service    `json:"services,omitempty"`
	Projects    []Project    `json:"projects,omitempty"`
	SocialLinks []SocialLink `json:"social_links,omitempty"`
}

type Job struct {
	ID          int64  `json:"id" db:"id"`
	ProfileID   string `json:"profile_id" db:"profile_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
}

type Service struct {
	ID          int64  `json:"id" db:"id"`
	ProfileID   string `json:"profile_id" db:"profile_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
}

type Project struct {
	ID          int64  `json:"id" db:"id"`
	ProfileID   string `json:"profile_id" db:"profile_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
	ProjectLink string `json:"project_link,omitempty" db:"project_link"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
}

type SocialLink struct {
	ID        int64  `json:"id" db:"id"`
	ProfileID string `json:"profile_id" db:"profile_id"`
	Platform  string `json:"platform" db:"platform"`
	URL       string `json:"url" db:"url"`
}
