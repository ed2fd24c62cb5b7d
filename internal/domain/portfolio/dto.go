// internal/domain/portfolio/dto.go
package portfolio

type ProfileRequest struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	AvatarURL string `json:"avatar_url"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type JobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type ServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProjectLink string `json:"project_link"`
	SortOrder   int    `json:"sort_order"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
