// internal/service/portfolio/service.go
package portfolio

import (
	"context"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
)

func (s *PortfolioService) ListServices(ctx context.Context, profileID string) ([]portfolio.Service, error) {
	return s.serviceRepo.ListByProfile(ctx, profileID)
}

func (s *PortfolioService) GetService(ctx context.Context, id int64) (*portfolio.Service, error) {
	return s.serviceRepo.FindByID(ctx, id)
}

func (s *PortfolioService) CreateService(ctx context.Context, subject string, req *portfolio.ServiceRequest) (*portfolio.Service, error) {
	svc := &portfolio.Service{
		ProfileID:   subject,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *PortfolioService) UpdateService(ctx context.Context, subject string, id int64, req *portfolio.ServiceRequest) (*portfolio.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.ProfileID != subject {
		return nil, xerrors.ErrForbidden
	}

	svc.Title = req.Title
	svc.Description = req.Description
	svc.SortOrder = req.SortOrder

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *PortfolioService) DeleteService(ctx context.Context, subject string, id int64) error {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ProfileID != subject {
		return xerrors.ErrForbidden
	}
	return s.serviceRepo.Delete(ctx, id)
}
