// internal/service/portfolio/social_link.go
package portfolio

import (
	"context"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
)

func (s *PortfolioService) ListSocialLinks(ctx context.Context, profileID string) ([]portfolio.SocialLink, error) {
	return s.socialRepo.ListByProfile(ctx, profileID)
}

func (s *PortfolioService) CreateSocialLink(ctx context.Context, subject string, req *portfolio.SocialLinkRequest) (*portfolio.SocialLink, error) {
	l := &portfolio.SocialLink{
		ProfileID: subject,
		Platform:  req.Platform,
		URL:       req.URL,
	}
	if err := s.socialRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *PortfolioService) UpdateSocialLink(ctx context.Context, subject string, id int64, req *portfolio.SocialLinkRequest) (*portfolio.SocialLink, error) {
	l, err := s.socialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.ProfileID != subject {
		return nil, xerrors.ErrForbidden
	}

	l.Platform = req.Platform
	l.URL = req.URL

	if err := s.socialRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *PortfolioService) DeleteSocialLink(ctx context.Context, subject string, id int64) error {
	l, err := s.socialRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if l.ProfileID != subject {
		return xerrors.ErrForbidden
	}
	return s.socialRepo.Delete(ctx, id)
}
