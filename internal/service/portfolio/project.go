// internal/service/portfolio/project.go
package portfolio

import (
	"context"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
)

func (s *PortfolioService) ListProjects(ctx context.Context, profileID string) ([]portfolio.Project, error) {
	return s.projectRepo.ListByProfile(ctx, profileID)
}

func (s *PortfolioService) GetProject(ctx context.Context, id int64) (*portfolio.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

func (s *PortfolioService) CreateProject(ctx context.Context, subject string, req *portfolio.ProjectRequest) (*portfolio.Project, error) {
	p := &portfolio.Project{
		ProfileID:   subject,
		Title:       req.Title,
		Description: req.Description,
		ProjectLink: req.ProjectLink,
		SortOrder:   req.SortOrder,
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) UpdateProject(ctx context.Context, subject string, id int64, req *portfolio.ProjectRequest) (*portfolio.Project, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ProfileID != subject {
		return nil, xerrors.ErrForbidden
	}

	p.Title = req.Title
	p.Description = req.Description
	p.ProjectLink = req.ProjectLink
	p.SortOrder = req.SortOrder

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) DeleteProject(ctx context.Context, subject string, id int64) error {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ProfileID != subject {
		return xerrors.ErrForbidden
	}
	return s.projectRepo.Delete(ctx, id)
}
