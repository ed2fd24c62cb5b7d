// internal/service/portfolio/profile.go
package portfolio

import (
	"context"
	"fmt"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// PortfolioService owns CRUD over the profile and its child resources.
// Every mutation is scoped to the authenticated subject; a mismatch with
// the resource owner is a forbidden error, never a silent write.
type PortfolioService struct {
	profileRepo portfolio.ProfileRepository
	jobRepo     portfolio.JobRepository
	serviceRepo portfolio.ServiceRepository
	projectRepo portfolio.ProjectRepository
	socialRepo  portfolio.SocialLinkRepository
	logger      *zap.Logger
}

func NewPortfolioService(
	profileRepo portfolio.ProfileRepository,
	jobRepo portfolio.JobRepository,
	serviceRepo portfolio.ServiceRepository,
	projectRepo portfolio.ProjectRepository,
	socialRepo portfolio.SocialLinkRepository,
	logger *zap.Logger,
) *PortfolioService {
	return &PortfolioService{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		serviceRepo: serviceRepo,
		projectRepo: projectRepo,
		socialRepo:  socialRepo,
		logger:      logger,
	}
}

// GetProfile retrieves a profile with all child collections attached.
func (s *PortfolioService) GetProfile(ctx context.Context, id string) (*portfolio.Profile, error) {
	p, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Jobs, err = s.jobRepo.ListByProfile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	if p.Services, err = s.serviceRepo.ListByProfile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	if p.Projects, err = s.projectRepo.ListByProfile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	if p.SocialLinks, err = s.socialRepo.ListByProfile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}

	return p, nil
}

// CreateProfile creates the subject's profile from the request, deriving
// the email from claims when the request leaves it empty. An existing
// profile is a conflict, not an update.
func (s *PortfolioService) CreateProfile(ctx context.Context, subject, claimsEmail string, req *portfolio.ProfileRequest) (*portfolio.Profile, error) {
	email := req.Email
	if email == "" {
		email = claimsEmail
	}

	p, created, err := s.profileRepo.CreateIfAbsent(ctx, &portfolio.Profile{
		ID:        subject,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		AvatarURL: req.AvatarURL,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("%w: profile %s", xerrors.ErrConflict, subject)
	}

	s.logger.Info("profile created", zap.String("profile_id", p.ID))
	return p, nil
}

// UpdateProfile replaces the mutable profile fields. Only the owning
// subject may update its profile.
func (s *PortfolioService) UpdateProfile(ctx context.Context, subject, profileID string, req *portfolio.ProfileRequest) (*portfolio.Profile, error) {
	if profileID != subject {
		return nil, xerrors.ErrForbidden
	}

	p, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.AvatarURL = req.AvatarURL
	p.Phone = req.Phone

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// SetAvatar records the stored avatar URL on the subject's own profile.
func (s *PortfolioService) SetAvatar(ctx context.Context, subject, profileID, avatarURL string) error {
	if profileID != subject {
		return xerrors.ErrForbidden
	}
	return s.profileRepo.UpdateAvatar(ctx, profileID, avatarURL)
}
