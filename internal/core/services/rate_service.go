package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
)

// rateService is the thin CRUD layer over the service catalog.
type rateService struct {
	repo portsrepo.RateRepositoryFacade
}

// NewRateService creates the service catalog service.
func NewRateService(repo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{repo: repo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.ServiceRate, error) {
	rate := domain.ServiceRate{
		RateID:          uuid.NewString(),
		ServiceType:     req.ServiceType,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		Price:           req.Price,
		StaffFee:        req.StaffFee,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.SaveRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save service rate: %w", err)
	}
	return &rate, nil
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.ServiceRate, error) {
	rates, err := s.repo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service rates: %w", err)
	}
	return rates, nil
}

func (s *rateService) DeactivateRate(ctx context.Context, rateID string) error {
	if err := s.repo.SetRateActive(ctx, rateID, false); err != nil {
		return fmt.Errorf("failed to deactivate rate %s: %w", rateID, err)
	}
	return nil
}
