// internal/service/portfolio/job.go
package portfolio

import (
	"context"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
)

func (s *PortfolioService) ListJobs(ctx context.Context, profileID string) ([]portfolio.Job, error) {
	return s.jobRepo.ListByProfile(ctx, profileID)
}

func (s *PortfolioService) CreateJob(ctx context.Context, subject string, req *portfolio.JobRequest) (*portfolio.Job, error) {
	j := &portfolio.Job{
		ProfileID:   subject,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *PortfolioService) UpdateJob(ctx context.Context, subject string, id int64, req *portfolio.JobRequest) (*portfolio.Job, error) {
	j, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j.ProfileID != subject {
		return nil, xerrors.ErrForbidden
	}

	j.Title = req.Title
	j.Description = req.Description

	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *PortfolioService) DeleteJob(ctx context.Context, subject string, id int64) error {
	j, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if j.ProfileID != subject {
		return xerrors.ErrForbidden
	}
	return s.jobRepo.Delete(ctx, id)
}
